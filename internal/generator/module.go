package generator

import "github.com/ibnicena/pycppgen/ast"

// emitImport handles a bare `import a, b as c` statement. spec.md §4.2:
// recognized module names only ever produce include-set effects; no lines
// are ever appended for an import, recognized or not.
func (g *Generator) emitImport(node *ast.Import) {
	for _, alias := range node.Names {
		switch alias.Name {
		case "requests":
			g.includes.add(IncludeHTTP)
		case "json":
			g.includes.add(IncludeJSON)
		case "math":
			g.includes.add(IncludeCmath)
		case "os":
			g.includes.add(IncludeFilesystem)
		case "sys":
			// No target header corresponds to the sys module; handled
			// case-by-case at call sites instead (none are recognized yet).
		case "numpy":
			g.includes.add(IncludeNumCpp)
			g.numpyAliases[alias.EffectiveName()] = true
		case "multiprocessing":
			g.addThreadIncludes()
		}
		// Unrecognized imports are silently ignored (spec.md §4.2).
	}
}

// emitImportFrom handles `from module import a, b`.
func (g *Generator) emitImportFrom(node *ast.ImportFrom) {
	switch node.Module {
	case "multiprocessing":
		g.addThreadIncludes()
	case "asyncio":
		g.includes.add(IncludeCoroutine)
		g.includes.add(IncludeTask)
		g.includes.add(IncludeVector)
	}
}

func (g *Generator) addThreadIncludes() {
	g.includes.add(IncludeThread)
	g.includes.add(IncludeFuture)
	g.includes.add(IncludeVector)
	g.includes.add(IncludeMutex)
}
