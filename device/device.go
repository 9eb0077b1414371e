// Package device provides machine.Io capabilities: Console for process
// standard streams and Buffer for in-memory, scripted I/O.
package device
