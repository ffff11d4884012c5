package gls254

import (
	"sync"
)

// ecmultGenWindow is the window width used for multiples of the generator
const ecmultGenWindow = 5

// ecmultGenContext holds the odd-multiples tables of G and psi(G)
type ecmultGenContext struct {
	table       oddMultiplesTable
	tableLambda oddMultiplesTable
}

var (
	// Global context for generator multiplication (initialized once)
	globalGenContext *ecmultGenContext
	genContextOnce   sync.Once
)

// init builds both generator tables
func (ctx *ecmultGenContext) init() {
	ctx.table.build(&generator, ecmultGenWindow)
	ctx.tableLambda.setEndomorphism(&ctx.table)
}

// getGlobalGenContext returns the process-wide generator tables
func getGlobalGenContext() *ecmultGenContext {
	genContextOnce.Do(func() {
		globalGenContext = &ecmultGenContext{}
		globalGenContext.init()
	})
	return globalGenContext
}

// ScalarBaseMult returns k*G in constant time. It runs the ScalarMult
// driver against precomputed tables of G and psi(G), skipping the per-call
// table construction.
func ScalarBaseMult(k *Scalar) Point {
	ctx := getGlobalGenContext()
	var r Point
	ecmultTables(&r, k, &ctx.table, &ctx.tableLambda, ecmultGenWindow, true)
	return r
}
