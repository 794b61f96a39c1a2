// Package errors provides coded, located errors for the CLI and server.
//
// Failures from document parsing, rendering and publishing are mapped to
// registered codes by Classify:
//
//	E200-E209  render    (E201: recursion limit exceeded)
//	E210-E219  document  (syntax, unknown component, invalid shape, too large)
//	E220-E229  config
//	E230-E239  publish
//	E240-E249  cli
//
// # Usage
//
//	err := errors.Classify(parseErr, "page.yaml")
//	fmt.Print(err.Format())
//	// ERROR E211: Unknown component
//	//
//	//   page.yaml:4:5
//	//
//	//        2 │ children:
//	//        3 │   - tag: p
//	//   →    4 │   - tag: Card
//	//          │     ^
//	//
//	//   Hint: Use a lower-case tag for a plain element or register the component
//
// Error implements json.Marshaler, so the server writes it as the response
// body unchanged.
package errors
