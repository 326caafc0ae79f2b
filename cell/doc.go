// SPDX-License-Identifier: MIT

// Package cell defines the per-cell side of a PV module: the Provider
// contract that turns irradiance into a sampled I-V curve, a reference
// two-diode Provider (Model), and the Cell value owned by a module.
//
// What:
//
//   - Curve holds equal-length current, voltage and power samples plus Voc.
//   - Constants carries the module-wide scalars a Provider exposes
//     (Isc0, VRBD, Vbypass, Npts).
//   - Model implements Provider with a two-diode equation, a shunt path and an
//     avalanche breakdown term, sweeping diode voltage from just above VRBD
//     to Voc.
//   - Cell pairs one irradiance value with its Curve. Cells are values with
//     explicit Clone; no two cells ever share sample slices.
//
// Model equations (Vt = k·T/q):
//
//	Igen   = Ee · Isc0
//	Id1    = Isat1 · (exp(Vd/Vt) − 1)
//	Id2    = Isat2 · (exp(Vd/(2·Vt)) − 1)
//	Ish    = Vd / Rsh
//	fRBD   = aRBD · (1 − Vd/VRBD)^(−nRBD)
//	Icell  = Igen − Id1 − Id2 − Ish·(1 + fRBD)
//	Vcell  = Vd − Icell · Rs
//
// Errors:
//
//   - ErrInvalidCurve: a Provider returned empty or unequal-length samples.
//   - ErrInvalidIrradiance: irradiance is negative, NaN or infinite.
package cell
