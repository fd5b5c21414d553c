// Package submit posts candidate applications to the remote endpoint.
//
// The client sends a single JSON request per call and classifies the outcome:
// any 2xx response is success, any other status is a *StatusError (matching
// ErrStatus) and everything else is a transport failure. Response bodies are
// drained and discarded; the remote side does not return structured errors.
// There are no retries.
package submit
