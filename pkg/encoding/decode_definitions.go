// Copyright 2016-2017, Pulumi Corporation.  All rights reserved.

package encoding

import (
	"gopkg.in/yaml.v3"

	"github.com/regina-lang/regina/pkg/compiler/ast"
	"github.com/regina-lang/regina/pkg/tokens"
)

func (d *decoder) decodeFile(n *yaml.Node) (*ast.File, error) {
	m, err := d.mapping(n, "imports", "functions", "classes", "objects", "main")
	if err != nil {
		return nil, err
	}

	file := &ast.File{NodeValue: ast.NewNodeValue(ast.FileKind, d.loc(n)), Path: d.path}

	imps, err := d.sequence(m.get("imports"))
	if err != nil {
		return nil, err
	}
	for _, imp := range imps {
		decoded, err := d.decodeImport(imp)
		if err != nil {
			return nil, err
		}
		file.Imports = append(file.Imports, decoded)
	}

	fncs, err := d.sequence(m.get("functions"))
	if err != nil {
		return nil, err
	}
	for _, fnc := range fncs {
		decoded, err := d.decodeFunction(fnc)
		if err != nil {
			return nil, err
		}
		file.Functions = append(file.Functions, decoded)
	}

	for _, group := range []struct {
		key    string
		object bool
		dest   *[]*ast.Class
	}{
		{"classes", false, &file.Classes},
		{"objects", true, &file.Objects},
	} {
		classes, err := d.sequence(m.get(group.key))
		if err != nil {
			return nil, err
		}
		for _, class := range classes {
			decoded, err := d.decodeClass(class, group.object)
			if err != nil {
				return nil, err
			}
			*group.dest = append(*group.dest, decoded)
		}
	}

	if main := m.get("main"); main != nil {
		if file.Main, err = d.decodeBlock(main); err != nil {
			return nil, err
		}
	}

	return file, nil
}

// decodeImport accepts either a bare path, whose alias is its base name, or a {path, as} mapping.
func (d *decoder) decodeImport(n *yaml.Node) (*ast.Import, error) {
	imp := &ast.Import{NodeValue: ast.NewNodeValue(ast.ImportKind, d.loc(n))}
	if n.Kind == yaml.ScalarNode {
		imp.Path = n.Value
		alias := DefaultAlias(n.Value)
		if !tokens.IsName(alias) {
			return nil, d.errorf(n, "import '%v' needs an explicit alias", n.Value)
		}
		imp.Alias = ast.NewIdentifier(d.loc(n), tokens.Name(alias))
		return imp, nil
	}

	m, err := d.mapping(n, "path", "as")
	if err != nil {
		return nil, err
	}
	path, err := d.require(m, "path")
	if err != nil {
		return nil, err
	}
	if imp.Path, err = d.scalar(path); err != nil {
		return nil, err
	}
	if as := m.get("as"); as != nil {
		if imp.Alias, err = d.decodeName(as); err != nil {
			return nil, err
		}
	} else {
		alias := DefaultAlias(imp.Path)
		if !tokens.IsName(alias) {
			return nil, d.errorf(n, "import '%v' needs an explicit alias", imp.Path)
		}
		imp.Alias = ast.NewIdentifier(d.loc(path), tokens.Name(alias))
	}
	return imp, nil
}

func (d *decoder) decodeFunction(n *yaml.Node) (*ast.Function, error) {
	m, err := d.mapping(n, "name", "params", "body")
	if err != nil {
		return nil, err
	}
	fnc := &ast.Function{NodeValue: ast.NewNodeValue(ast.FunctionKind, d.loc(n))}

	name, err := d.require(m, "name")
	if err != nil {
		return nil, err
	}
	if fnc.Name, err = d.decodeName(name); err != nil {
		return nil, err
	}

	// Parameters are bare names (required) or `{set: name, to: default}` assignments, which must come last.
	params, err := d.sequence(m.get("params"))
	if err != nil {
		return nil, err
	}
	for _, param := range params {
		if param.Kind == yaml.ScalarNode {
			if len(fnc.Defaults) > 0 {
				return nil, d.errorf(param, "required parameter '%v' follows a defaulted one", param.Value)
			}
			id, err := d.decodeName(param)
			if err != nil {
				return nil, err
			}
			fnc.Params = append(fnc.Params, id)
			continue
		}
		def, err := d.decodeAssignment(param)
		if err != nil {
			return nil, err
		}
		if _, isid := def.Name(); !isid {
			return nil, d.errorf(param, "a defaulted parameter must assign a plain name")
		}
		fnc.Defaults = append(fnc.Defaults, def)
	}

	body := m.get("body")
	if body == nil {
		fnc.Body = ast.NewBlock(d.loc(n), nil)
	} else if fnc.Body, err = d.decodeBlock(body); err != nil {
		return nil, err
	}
	return fnc, nil
}

func (d *decoder) decodeClass(n *yaml.Node, object bool) (*ast.Class, error) {
	m, err := d.mapping(n, "name", "fields", "methods")
	if err != nil {
		return nil, err
	}
	class := &ast.Class{NodeValue: ast.NewNodeValue(ast.ClassKind, d.loc(n)), Object: object}

	name, err := d.require(m, "name")
	if err != nil {
		return nil, err
	}
	if class.Name, err = d.decodeName(name); err != nil {
		return nil, err
	}

	fields, err := d.sequence(m.get("fields"))
	if err != nil {
		return nil, err
	}
	for _, field := range fields {
		decoded, err := d.decodeAssignment(field)
		if err != nil {
			return nil, err
		}
		class.Fields = append(class.Fields, decoded)
	}

	methods, err := d.sequence(m.get("methods"))
	if err != nil {
		return nil, err
	}
	for _, method := range methods {
		decoded, err := d.decodeFunction(method)
		if err != nil {
			return nil, err
		}
		class.Methods = append(class.Methods, decoded)
	}
	return class, nil
}

// decodeName decodes a scalar that must be a legal identifier.
func (d *decoder) decodeName(n *yaml.Node) (*ast.Identifier, error) {
	s, err := d.scalar(n)
	if err != nil {
		return nil, err
	}
	if !tokens.IsName(s) {
		return nil, d.errorf(n, "'%v' is not a legal name", s)
	}
	return ast.NewIdentifier(d.loc(n), tokens.Name(s)), nil
}
