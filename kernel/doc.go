// Package kernel implements the escape-time iteration rules ("kernels") of the
// fractal explorer.
//
// # Overview
//
// A Kernel maps a point of the complex plane and an iteration budget to an
// EscapeRecord. Every kernel shares the same bailout discipline: the state is
// tested for escape at the top of each iteration and then advanced, so the
// reported count is the number of completed updates before the escape test
// fired. A point that exhausts the budget is "inside the set" and reports the
// budget itself.
//
// Kernels form a closed set enumerated by Kind. Dispatch is an exhaustive
// switch on the kind; there is no registration of third-party kernels.
//
// # Concurrency
//
// Compute and ComputeFull only read the kernel. Any number of goroutines may
// call them on the same Kernel as long as nobody calls SetParameter at the
// same time. The render engine copies the kernel into its per-pass snapshot
// for exactly that reason.
//
// # Precision
//
// All arithmetic is float64. Deep zooms lose precision; this is accepted.
package kernel
