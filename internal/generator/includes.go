package generator

import "sort"

// The emitted-include vocabulary (spec.md §6). Names are the canonical
// target-language strings the generator must produce verbatim.
const (
	IncludeString     = "<string>"
	IncludeIostream    = "<iostream>"
	IncludeVector      = "<vector>"
	IncludeMap         = "<map>"
	IncludeTuple       = "<tuple>"
	IncludeStdexcept   = "<stdexcept>"
	IncludeFstream     = "<fstream>"
	IncludeAlgorithm   = "<algorithm>"
	IncludeCctype      = "<cctype>"
	IncludeSstream     = "<sstream>"
	IncludeIterator    = "<iterator>"
	IncludeCmath       = "<cmath>"
	IncludeFilesystem  = "<filesystem>"
	IncludeThread      = "<thread>"
	IncludeFuture      = "<future>"
	IncludeMutex       = "<mutex>"
	IncludeCoroutine   = "<coroutine>"
	IncludeTask        = `"task.hpp"`
	IncludeJSON        = `"nlohmann/json.hpp"`
	IncludeHTTP        = `"requests.hpp"`
	IncludeNumCpp      = `"NumCpp.hpp"`
	IncludeStringUtils = `"string_utils.hpp"`
)

// includeSet accumulates #include directives during one generator
// invocation. Insertion order never matters — flush always sorts — so a
// plain map is the right shape, not an ordered list.
type includeSet struct {
	set map[string]struct{}
}

func newIncludeSet() *includeSet {
	return &includeSet{set: make(map[string]struct{})}
}

func (s *includeSet) add(include string) {
	s.set[include] = struct{}{}
}

func (s *includeSet) has(include string) bool {
	_, ok := s.set[include]
	return ok
}

// flush returns the final, lexicographically sorted include list with
// invariant 3 of spec.md §3 applied: the HTTP client header transitively
// provides JSON, so if both are present the JSON entry is dropped.
func (s *includeSet) flush() []string {
	if s.has(IncludeHTTP) {
		delete(s.set, IncludeJSON)
	}
	out := make([]string, 0, len(s.set))
	for inc := range s.set {
		out = append(out, inc)
	}
	sort.Strings(out)
	return out
}
