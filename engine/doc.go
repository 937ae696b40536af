// Package engine wires EventSource, Strategy and Executor instances into
// a running pipeline: it owns channel provisioning, task spawning, and
// task-completion reporting, but has zero knowledge of any concrete
// event or action type — those are supplied by the caller as E and A.
package engine
