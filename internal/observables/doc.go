// Package observables computes polarized-synchrotron and Faraday-rotation
// sky maps from volumetric physical fields.
//
// Given 3D grids of magnetic field components and thermal/cosmic-ray
// electron densities, it produces 2D maps of Stokes I, Q and U, Faraday
// depth / rotation measure, and polarization angle by numerical
// integration along the line-of-sight axis (always the third grid index).
//
//   - [Stokes]: I, Q, U via emissivity-weighted integration with
//     cumulative Faraday rotation at every depth sample
//   - [FaradayDepth] / [CumulativeFaradayDepth]: total and prefix
//     line-of-sight integrals of Bz * ne
//   - [Psi] and [RM]: post-processing of Q/U maps from two wavelengths
//
// Every function is a pure, deterministic transform with no retained
// state. Element-wise stages and per-column integrals run in parallel
// across spatial columns; the depth integral within a column is strictly
// sequential.
package observables
