package forth

// @generated from engine_test.go

//go:generate go run ../scripts/gen_expects.go -- engine_test.go expects_test.go

func withEvalOptions(opts ...EngineOption) func(evalTestCase) evalTestCase {
	return func(et evalTestCase) evalTestCase {
		return et.withOptions(opts...)
	}
}

func withEvalStack(values ...int) func(evalTestCase) evalTestCase {
	return func(et evalTestCase) evalTestCase {
		return et.withStack(values...)
	}
}

func withEvalHeap(values ...int) func(evalTestCase) evalTestCase {
	return func(et evalTestCase) evalTestCase {
		return et.withHeap(values...)
	}
}

func expectEvalError(err error) func(evalTestCase) evalTestCase {
	return func(et evalTestCase) evalTestCase {
		return et.expectError(err)
	}
}

func expectEvalStack(values ...int) func(evalTestCase) evalTestCase {
	return func(et evalTestCase) evalTestCase {
		return et.expectStack(values...)
	}
}

func expectEvalCells(cells ...Cell) func(evalTestCase) evalTestCase {
	return func(et evalTestCase) evalTestCase {
		return et.expectCells(cells...)
	}
}

func expectEvalXT(name string) func(evalTestCase) evalTestCase {
	return func(et evalTestCase) evalTestCase {
		return et.expectXT(name)
	}
}

func expectEvalRStack(values ...int) func(evalTestCase) evalTestCase {
	return func(et evalTestCase) evalTestCase {
		return et.expectRStack(values...)
	}
}

func expectEvalHeap(addr int, values ...int) func(evalTestCase) evalTestCase {
	return func(et evalTestCase) evalTestCase {
		return et.expectHeap(addr, values...)
	}
}

func expectEvalHere(here int) func(evalTestCase) evalTestCase {
	return func(et evalTestCase) evalTestCase {
		return et.expectHere(here)
	}
}

func expectEvalCompileDepth(depth int) func(evalTestCase) evalTestCase {
	return func(et evalTestCase) evalTestCase {
		return et.expectCompileDepth(depth)
	}
}

func expectEvalOutput(output string) func(evalTestCase) evalTestCase {
	return func(et evalTestCase) evalTestCase {
		return et.expectOutput(output)
	}
}

func expectEvalWord(name string) func(evalTestCase) evalTestCase {
	return func(et evalTestCase) evalTestCase {
		return et.expectWord(name)
	}
}

func expectEvalDump(dump string) func(evalTestCase) evalTestCase {
	return func(et evalTestCase) evalTestCase {
		return et.expectDump(dump)
	}
}
