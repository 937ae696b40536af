// Package kazuka defines the Event and Action unions shared by every
// EventSource, Strategy and Executor in the engine (see package engine),
// along with the errors that can cross a component boundary.
package kazuka
