package generator

import (
	"strings"

	"github.com/ibnicena/pycppgen/ast"
)

// idiomRule is one entry of the prioritized call-remapping table of
// spec.md §4.9. Rules are tried in order; the first whose match reports
// true wins. This table-driven shape is the one deliberate structural
// departure from original_source/'s linear if/elif ladder (SPEC_FULL.md
// §3): Go has no elif chain idiom, and a slice of ordered rules is the
// closer fit to the teacher's own registry-style lookups.
type idiomRule struct {
	name  string
	match func(g *Generator, funcStr string, args []string) bool
	apply func(g *Generator, node *ast.Call, funcStr string, args []string) string
}

func suffixRule(name, suffix string, apply func(g *Generator, node *ast.Call, obj string, args []string) string) idiomRule {
	return idiomRule{
		name: name,
		match: func(g *Generator, funcStr string, args []string) bool {
			return strings.HasSuffix(funcStr, suffix)
		},
		apply: func(g *Generator, node *ast.Call, funcStr string, args []string) string {
			obj := strings.TrimSuffix(funcStr, suffix)
			return apply(g, node, obj, args)
		},
	}
}

func exactRule(name, literal string, apply func(g *Generator, node *ast.Call, funcStr string, args []string) string) idiomRule {
	return idiomRule{
		name:  name,
		match: func(g *Generator, funcStr string, args []string) bool { return funcStr == literal },
		apply: apply,
	}
}

func joinArgs(args []string) string { return strings.Join(args, ", ") }

// numpyFuncSuffix reports whether funcStr starts with `<alias>.` for one of
// the currently-recognized numpy import aliases, returning what follows the
// dot. original_source/ only ever checks the literal prefixes "np." and
// "numpy."; this generalizes that to whatever alias `import numpy as X`ed,
// per SPEC_FULL.md MODULE 4's config.NumpyAlias.
func numpyFuncSuffix(g *Generator, funcStr string) (string, bool) {
	for alias := range g.numpyAliases {
		prefix := alias + "."
		if strings.HasPrefix(funcStr, prefix) {
			return strings.TrimPrefix(funcStr, prefix), true
		}
	}
	return "", false
}

func numpySuffixRule(name, suffix, ncExpr string) idiomRule {
	return idiomRule{
		name: name,
		match: func(g *Generator, funcStr string, args []string) bool {
			s, ok := numpyFuncSuffix(g, funcStr)
			return ok && s == suffix
		},
		apply: func(g *Generator, node *ast.Call, funcStr string, args []string) string {
			g.includes.add(IncludeNumCpp)
			return ncExpr + "(" + joinArgs(args) + ")"
		},
	}
}

// idiomTable is filled in init rather than by a package-level initializer:
// the rules call emitExpr, which reaches emitCall, which reads idiomTable,
// and Go rejects that as an initialization cycle.
var idiomTable []idiomRule

func init() { idiomTable = buildIdiomTable() }

func buildIdiomTable() []idiomRule {
	var rules []idiomRule

	rules = append(rules,
		exactRule("print", "print", func(g *Generator, node *ast.Call, f string, args []string) string {
			g.includes.add(IncludeIostream)
			if len(args) == 0 {
				return "std::cout << std::endl"
			}
			return "std::cout << " + strings.Join(args, ` << " " << `) + " << std::endl"
		}),
		exactRule("len", "len", func(g *Generator, node *ast.Call, f string, args []string) string {
			return args[0] + ".size()"
		}),
		exactRule("str", "str", func(g *Generator, node *ast.Call, f string, args []string) string {
			return "std::to_string(" + args[0] + ")"
		}),
		exactRule("int", "int", func(g *Generator, node *ast.Call, f string, args []string) string {
			return "std::stoi(" + args[0] + ")"
		}),
		idiomRule{
			name:  "range",
			match: func(g *Generator, f string, a []string) bool { return f == "range" },
			apply: func(g *Generator, node *ast.Call, f string, args []string) string {
				g.includes.add(IncludeVector)
				switch len(args) {
				case 1:
					return "[&](){ std::vector<int> _r; for(int _i=0; _i<" + args[0] + "; _i++) _r.push_back(_i); return _r; }()"
				case 2:
					return "[&](){ std::vector<int> _r; for(int _i=" + args[0] + "; _i<" + args[1] + "; _i++) _r.push_back(_i); return _r; }()"
				case 3:
					return "[&](){ std::vector<int> _r; for(int _i=" + args[0] + "; _i<" + args[1] + "; _i+=" + args[2] + ") _r.push_back(_i); return _r; }()"
				default:
					return "std::vector<int>()"
				}
			},
		},
		idiomRule{
			name:  "math.*",
			match: func(g *Generator, f string, a []string) bool { return strings.HasPrefix(f, "math.") },
			apply: func(g *Generator, node *ast.Call, f string, args []string) string {
				return "std::" + strings.TrimPrefix(f, "math.") + "(" + joinArgs(args) + ")"
			},
		},
		exactRule("json.loads", "json.loads", func(g *Generator, node *ast.Call, f string, args []string) string {
			return "nlohmann::json::parse(" + joinArgs(args) + ")"
		}),
		exactRule("json.dumps", "json.dumps", func(g *Generator, node *ast.Call, f string, args []string) string {
			return args[0] + ".dump()"
		}),
		exactRule("requests.get", "requests.get", func(g *Generator, node *ast.Call, f string, args []string) string {
			g.includes.add(IncludeHTTP)
			return "requests::get(" + joinArgs(args) + ")"
		}),
		suffixRule(".json", ".json", func(g *Generator, node *ast.Call, obj string, args []string) string {
			if !g.includes.has(IncludeHTTP) {
				g.includes.add(IncludeJSON)
			}
			return "nlohmann::json::parse(" + obj + ".text)"
		}),
		suffixRule(".upper", ".upper", func(g *Generator, node *ast.Call, obj string, args []string) string {
			g.includes.add(IncludeAlgorithm)
			g.includes.add(IncludeCctype)
			return "std::transform(" + obj + ".begin(), " + obj + ".end(), " + obj + ".begin(), ::toupper), " + obj
		}),
		suffixRule(".lower", ".lower", func(g *Generator, node *ast.Call, obj string, args []string) string {
			g.includes.add(IncludeAlgorithm)
			g.includes.add(IncludeCctype)
			return "std::transform(" + obj + ".begin(), " + obj + ".end(), " + obj + ".begin(), ::tolower), " + obj
		}),
		suffixRule(".split", ".split", func(g *Generator, node *ast.Call, obj string, args []string) string {
			g.includes.add(IncludeStringUtils)
			if len(args) > 0 {
				return "string_utils::split(" + obj + ", " + args[0] + ")"
			}
			return "string_utils::split(" + obj + ")"
		}),
		suffixRule(".strip", ".strip", func(g *Generator, node *ast.Call, obj string, args []string) string {
			g.includes.add(IncludeStringUtils)
			return "string_utils::strip(" + obj + ")"
		}),
		suffixRule(".lstrip", ".lstrip", func(g *Generator, node *ast.Call, obj string, args []string) string {
			g.includes.add(IncludeStringUtils)
			return "string_utils::lstrip(" + obj + ")"
		}),
		suffixRule(".rstrip", ".rstrip", func(g *Generator, node *ast.Call, obj string, args []string) string {
			g.includes.add(IncludeStringUtils)
			return "string_utils::rstrip(" + obj + ")"
		}),
		idiomRule{
			// String join requires a separator argument (".".join(list)). A
			// call ending in ".join" with no args is not this rule — it
			// falls through to the thread-join rule near the bottom of the
			// table instead of indexing an empty args slice (spec.md §7's
			// "malformed recognized call" policy: recover, don't crash).
			name: ".join (string)",
			match: func(g *Generator, f string, a []string) bool {
				return strings.HasSuffix(f, ".join") && len(a) > 0
			},
			apply: func(g *Generator, node *ast.Call, f string, args []string) string {
				obj := strings.TrimSuffix(f, ".join")
				g.includes.add(IncludeStringUtils)
				return "string_utils::join(" + obj + ", " + args[0] + ")"
			},
		},
		suffixRule(".replace", ".replace", func(g *Generator, node *ast.Call, obj string, args []string) string {
			g.includes.add(IncludeStringUtils)
			return "string_utils::replace(" + obj + ", " + joinArgs(args) + ")"
		}),
		suffixRule(".startswith", ".startswith", func(g *Generator, node *ast.Call, obj string, args []string) string {
			g.includes.add(IncludeStringUtils)
			return "string_utils::startswith(" + obj + ", " + args[0] + ")"
		}),
		suffixRule(".endswith", ".endswith", func(g *Generator, node *ast.Call, obj string, args []string) string {
			g.includes.add(IncludeStringUtils)
			return "string_utils::endswith(" + obj + ", " + args[0] + ")"
		}),
		suffixRule(".append", ".append", func(g *Generator, node *ast.Call, obj string, args []string) string {
			return obj + ".push_back(" + joinArgs(args) + ")"
		}),
		suffixRule(".pop", ".pop", func(g *Generator, node *ast.Call, obj string, args []string) string {
			if len(args) > 0 {
				return obj + ".erase(" + obj + ".begin() + " + args[0] + ")"
			}
			return obj + ".pop_back()"
		}),
		suffixRule(".extend", ".extend", func(g *Generator, node *ast.Call, obj string, args []string) string {
			g.includes.add(IncludeAlgorithm)
			return obj + ".insert(" + obj + ".end(), " + args[0] + ".begin(), " + args[0] + ".end())"
		}),
		suffixRule(".insert", ".insert", func(g *Generator, node *ast.Call, obj string, args []string) string {
			return obj + ".insert(" + obj + ".begin() + " + args[0] + ", " + args[1] + ")"
		}),
		suffixRule(".remove", ".remove", func(g *Generator, node *ast.Call, obj string, args []string) string {
			g.includes.add(IncludeAlgorithm)
			return obj + ".erase(std::remove(" + obj + ".begin(), " + obj + ".end(), " + args[0] + "), " + obj + ".end())"
		}),
		suffixRule(".index", ".index", func(g *Generator, node *ast.Call, obj string, args []string) string {
			g.includes.add(IncludeAlgorithm)
			return "std::distance(" + obj + ".begin(), std::find(" + obj + ".begin(), " + obj + ".end(), " + args[0] + "))"
		}),
		suffixRule(".count", ".count", func(g *Generator, node *ast.Call, obj string, args []string) string {
			g.includes.add(IncludeAlgorithm)
			return "std::count(" + obj + ".begin(), " + obj + ".end(), " + args[0] + ")"
		}),
	)

	rules = append(rules,
		idiomRule{
			name: "np.array",
			match: func(g *Generator, f string, a []string) bool {
				s, ok := numpyFuncSuffix(g, f)
				return ok && s == "array"
			},
			apply: func(g *Generator, node *ast.Call, f string, args []string) string {
				g.includes.add(IncludeNumCpp)
				dtype := "double"
				if len(node.Args) > 0 {
					dtype = inferNumpyDtype(node.Args[0])
				}
				return "nc::NdArray<" + dtype + ">(" + args[0] + ")"
			},
		},
		numpySuffixRule("np.zeros", "zeros", "nc::zeros<double>"),
		numpySuffixRule("np.ones", "ones", "nc::ones<double>"),
		numpySuffixRule("np.arange", "arange", "nc::arange<double>"),
		numpySuffixRule("np.linspace", "linspace", "nc::linspace<double>"),
		numpySuffixRule("np.eye", "eye", "nc::eye<double>"),
	)
	rules = append(rules,
		idiomRule{
			name: "np.random.rand",
			match: func(g *Generator, f string, a []string) bool {
				s, ok := numpyFuncSuffix(g, f)
				return ok && s == "random.rand"
			},
			apply: func(g *Generator, node *ast.Call, f string, args []string) string {
				g.includes.add(IncludeNumCpp)
				return "nc::random::rand<double>(nc::Shape(" + joinArgs(args) + "))"
			},
		},
		idiomRule{
			name: "np.random.randn",
			match: func(g *Generator, f string, a []string) bool {
				s, ok := numpyFuncSuffix(g, f)
				return ok && s == "random.randn"
			},
			apply: func(g *Generator, node *ast.Call, f string, args []string) string {
				g.includes.add(IncludeNumCpp)
				return "nc::random::standardNormal<double>(nc::Shape(" + joinArgs(args) + "))"
			},
		},
	)
	rules = append(rules,
		numpySuffixRule("np.sum", "sum", "nc::sum"),
		numpySuffixRule("np.mean", "mean", "nc::mean"),
		numpySuffixRule("np.std", "std", "nc::stdev"),
		numpySuffixRule("np.min", "min", "nc::min"),
		numpySuffixRule("np.max", "max", "nc::max"),
		numpySuffixRule("np.dot", "dot", "nc::dot"),
		numpySuffixRule("np.sqrt", "sqrt", "nc::sqrt"),
		numpySuffixRule("np.exp", "exp", "nc::exp"),
		numpySuffixRule("np.log", "log", "nc::log"),
		numpySuffixRule("np.abs", "abs", "nc::abs"),
		numpySuffixRule("np.matmul", "matmul", "nc::matmul"),
		numpySuffixRule("np.argmax", "argmax", "nc::argmax"),
		numpySuffixRule("np.argmin", "argmin", "nc::argmin"),
		numpySuffixRule("np.where", "where", "nc::where"),
		numpySuffixRule("np.concatenate", "concatenate", "nc::concatenate"),
		numpySuffixRule("np.vstack", "vstack", "nc::vstack"),
		numpySuffixRule("np.hstack", "hstack", "nc::hstack"),
		numpySuffixRule("np.stack", "stack", "nc::stack"),
	)
	rules = append(rules,
		numpySuffixRule("np.linalg.det", "linalg.det", "nc::linalg::det"),
		numpySuffixRule("np.linalg.inv", "linalg.inv", "nc::linalg::inv"),
		numpySuffixRule("np.linalg.eig", "linalg.eig", "nc::linalg::eig"),
		numpySuffixRule("np.linalg.solve", "linalg.solve", "nc::linalg::solve"),
		numpySuffixRule("np.linalg.svd", "linalg.svd", "nc::linalg::svd"),
		numpySuffixRule("np.linalg.norm", "linalg.norm", "nc::linalg::norm"),
		suffixRule(".reshape", ".reshape", func(g *Generator, node *ast.Call, obj string, args []string) string {
			return obj + ".reshape(" + joinArgs(args) + ")"
		}),
		suffixRule(".transpose", ".transpose", func(g *Generator, node *ast.Call, obj string, args []string) string {
			return obj + ".transpose()"
		}),
	)

	rules = append(rules,
		idiomRule{
			name:  "Process",
			match: func(g *Generator, f string, a []string) bool { return f == "Process" },
			apply: func(g *Generator, node *ast.Call, f string, args []string) string {
				g.addThreadIncludes()
				var target string
				var threadArgs []string
				for _, kw := range node.Keywords {
					switch kw.Name {
					case "target":
						target = g.emitExpr(kw.Value)
					case "args":
						if tuple, ok := kw.Value.(*ast.Tuple); ok {
							threadArgs = make([]string, len(tuple.Elts))
							for i, elt := range tuple.Elts {
								threadArgs[i] = g.emitExpr(elt)
							}
						}
					}
				}
				if target != "" {
					parts := append([]string{target}, threadArgs...)
					return "std::thread(" + joinArgs(parts) + ")"
				}
				return "std::thread()"
			},
		},
		idiomRule{
			name:  "Pool",
			match: func(g *Generator, f string, a []string) bool { return f == "Pool" },
			apply: func(g *Generator, node *ast.Call, f string, args []string) string {
				workers := "4"
				if len(args) > 0 {
					workers = args[0]
				}
				return "/* Pool with " + workers + " workers */"
			},
		},
		idiomRule{
			name:  "Lock",
			match: func(g *Generator, f string, a []string) bool { return f == "Lock" },
			apply: func(g *Generator, node *ast.Call, f string, args []string) string {
				g.includes.add(IncludeMutex)
				return "std::mutex()"
			},
		},
		suffixRule(".start", ".start", func(g *Generator, node *ast.Call, obj string, args []string) string {
			return "/* " + obj + " starts automatically */"
		}),
		suffixRule(".join", ".join", func(g *Generator, node *ast.Call, obj string, args []string) string {
			return obj + ".join()"
		}),
		suffixRule(".read", ".read", func(g *Generator, node *ast.Call, obj string, args []string) string {
			g.includes.add(IncludeSstream)
			g.includes.add(IncludeIterator)
			return "std::string((std::istreambuf_iterator<char>(" + obj + ")), std::istreambuf_iterator<char>())"
		}),
		suffixRule(".readline", ".readline", func(g *Generator, node *ast.Call, obj string, args []string) string {
			return "[&](){ std::string _line; std::getline(" + obj + ", _line); return _line; }()"
		}),
		suffixRule(".readlines", ".readlines", func(g *Generator, node *ast.Call, obj string, args []string) string {
			g.includes.add(IncludeVector)
			return "[&](){ std::vector<std::string> _lines; std::string _line; while(std::getline(" + obj + ", _line)) _lines.push_back(_line); return _lines; }()"
		}),
		suffixRule(".write", ".write", func(g *Generator, node *ast.Call, obj string, args []string) string {
			return obj + " << " + args[0]
		}),
	)

	return rules
}

// inferNumpyDtype infers a NumCpp element type from a np.array(...) literal
// argument, matching original_source/'s infer_numpy_dtype exactly: only
// Constant elements are inspected (any other element is skipped); a float
// constant forces "double", a constant that is neither int nor float forces
// "double" immediately, otherwise the result is "int". A non-list argument
// yields "double".
func inferNumpyDtype(node ast.Expr) string {
	var elts []ast.Expr
	switch n := node.(type) {
	case *ast.List:
		elts = n.Elts
	case *ast.Tuple:
		elts = n.Elts
	default:
		return "double"
	}
	hasFloat := false
	for _, elt := range elts {
		c, ok := elt.(*ast.Constant)
		if !ok {
			continue
		}
		switch c.Value.(type) {
		case float64:
			hasFloat = true
		case int64:
			// integer element, no change
		default:
			return "double"
		}
	}
	if hasFloat {
		return "double"
	}
	return "int"
}

// emitCall is the Call dispatch entry point: render the callee and
// arguments, then try each idiom rule in priority order. An unrecognized
// call renders as a plain `<callee>(<args>)` with no include effect
// (spec.md §4.9).
func (g *Generator) emitCall(node *ast.Call) string {
	funcStr := g.emitExpr(node.Func)
	args := make([]string, len(node.Args))
	for i, a := range node.Args {
		args[i] = g.emitExpr(a)
	}

	for _, rule := range idiomTable {
		if rule.match(g, funcStr, args) {
			return rule.apply(g, node, funcStr, args)
		}
	}

	return funcStr + "(" + joinArgs(args) + ")"
}
