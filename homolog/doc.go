// Package homolog is a thin façade composing a cubical complex,
// construct.ChainComplexOver, and chain.HomologyField /
// chain.HomologyEuclidean into a single call, with ambient logging
// and policy threaded through rather than hardwired into the core
// algorithms.
package homolog
