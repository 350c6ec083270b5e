// Package document assembles and serializes the preset document handed to
// the control-mapping host:
//
//	{
//	  kind: "MainCompartment",
//	  value: {parameters: [...], groups: [...], mappings: [...]}
//	}
//
// Emit only sorts and normalizes. Validate is a separate pass that reports
// every structural problem at once (see package diagnostic for codes).
package document
