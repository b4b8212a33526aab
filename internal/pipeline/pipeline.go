package pipeline

// Pipeline is an ordered sequence of processing stages (spec §7).
type Pipeline struct {
	processors []Processor
}

func New(processors ...Processor) *Pipeline {
	return &Pipeline{processors: processors}
}

// Run executes every stage in order, continuing even after a stage
// records an error so later stages (and their own diagnostics) still
// get a chance to run against whatever the context already holds.
func (p *Pipeline) Run(initial *CompileContext) *CompileContext {
	ctx := initial
	for _, proc := range p.processors {
		ctx = proc.Process(ctx)
	}
	return ctx
}
