// Package conversation owns the state of one chat session and the
// request/response cycle against the research endpoint.
//
// # Overview
//
// A session is made of two pieces:
//
//   - Store holds the append-only message log and the input draft. It does
//     no I/O and notifies subscribers after every mutation.
//   - Controller turns a submitted draft into one outbound Request, keeps
//     the single-flight guard, and folds the outcome back into the Store.
//
// # State machine
//
//	idle    --Submit() [draft non-empty]--> sending --Resolve(ok)--> idle
//	idle    --Submit() [draft non-empty]--> sending --Resolve(err)-> idle
//	idle    --Submit() [draft empty]------> idle     (no-op)
//	sending --Submit()--------------------> sending  (no-op)
//
// Submit and Resolve must be called from one goroutine (the UI event loop).
// Send is the only blocking step and touches no Controller state, so it may
// run anywhere:
//
//	req, ok := ctrl.Submit()
//	if ok {
//		go func() { replies <- ctrl.Send(ctx, req) }()
//	}
//	...
//	ctrl.Resolve(<-replies)
//
// Exchange composes the three for callers that are happy to block.
//
// # History
//
// Request.ChatHistory is the log as it was before the current user turn was
// appended. The turn itself travels only in Request.Query.
package conversation
