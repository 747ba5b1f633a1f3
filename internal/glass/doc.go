// Package glass maps glassmorphism tuning parameters to CSS.
//
// Compute turns a Params value into the custom properties and the CSS rule
// text shown by the studio. Inputs are never validated: a malformed tint
// produces NaN colour components, and out-of-range numbers are rendered as
// given. ApplyEnvironment handles the backdrop switch that happens when the
// environment mode changes.
package glass
