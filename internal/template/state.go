package template

// VarPrefix prefixes every identifier the lowering passes introduce into
// generated code, keeping them out of the author's own namespace.
const VarPrefix = "_jsx$"

// GlobalState accumulates the cross-element, per-file bookkeeping the
// lowering passes need: which runtime helpers got imported, which
// template literals were registered, which global DOM events were
// wired, and a couple of single-bit parsing modes threaded through the
// recursive descent.
type GlobalState struct {
	Events    map[string]bool
	Imports   map[string]bool
	Templates map[int]bool

	// ImportPath is the module specifier the preamble imports runtime
	// helpers from; overridable via the CLI's -import flag, defaulting
	// to "jsx/runtime".
	ImportPath string

	// IsComponentChild is set while lowering a child that is itself the
	// argument to a component call, so a nested component is bound to a
	// `const` variable and a plain element is cloned from its own
	// template.
	IsComponentChild bool
	// IsTemplateChild is set for the duration of lowering a bare
	// top-level array child ("template" tag), so the first element
	// beneath it is still forced through the template-literal path.
	IsTemplateChild bool
	// ParsingSpecialRoot suppresses the conditional/transition-wrapping
	// branch of GenerateFn while that branch's own recursive call is in
	// flight, so it isn't reapplied to itself.
	ParsingSpecialRoot bool
}

// DefaultImportPath is the runtime module specifier used when no -import
// override is given.
const DefaultImportPath = "jsx/runtime"

// NewGlobalState returns a GlobalState ready for a fresh file, importing
// runtime helpers from DefaultImportPath.
func NewGlobalState() *GlobalState {
	return &GlobalState{
		Events:     make(map[string]bool),
		Imports:    make(map[string]bool),
		Templates:  make(map[int]bool),
		ImportPath: DefaultImportPath,
	}
}

// AddImport records that the generated preamble must import name from
// the runtime module.
func (s *GlobalState) AddImport(name string) {
	s.Imports[name] = true
}

// AddEvent records that window-level delegated-event plumbing is needed
// for the named DOM event.
func (s *GlobalState) AddEvent(name string) {
	s.Events[name] = true
}

// AddTemplate records that templates[id] must get a template-literal
// declaration in the preamble.
func (s *GlobalState) AddTemplate(id int) {
	s.Templates[id] = true
}

// EventVar is the window-scoped identifier a delegated global event is
// stashed under.
func EventVar(eventName string) string {
	return VarPrefix + "global_event_" + eventName
}
