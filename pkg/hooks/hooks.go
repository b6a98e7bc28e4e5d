// Package hooks executes optional per-package lifecycle scripts written in
// Tengo. A package may ship a hooks directory with one script per hook type
// (hooks/post-install.tengo, hooks/pre-remove.tengo); missing scripts are a
// no-op.
package hooks

import (
	"os"
	"path/filepath"

	"github.com/d5/tengo/v2"
	"github.com/d5/tengo/v2/stdlib"
	"github.com/gopu-inc/initpkg/pkg/errors"
)

// HookType represents the type of hook.
type HookType string

// Supported hook types.
const (
	PostInstall HookType = "post-install"
	PreRemove   HookType = "pre-remove"
)

// HooksDirName is the directory inside a package that holds hook scripts.
const HooksDirName = "hooks"

// Context contains the information passed to hook scripts.
type Context struct {
	PackageName    string
	PackageVersion string
	PackagePath    string
	Vars           map[string]interface{}
}

// Executor runs Tengo hook scripts.
type Executor struct {
	// modules the scripts may import.
	modules *tengo.ModuleMap
}

// NewExecutor creates a hook executor with the default module allowlist.
func NewExecutor() *Executor {
	return &Executor{
		modules: stdlib.GetModuleMap("fmt", "os", "text", "times"),
	}
}

// RunDir executes the hook script of the given type from packageDir, if one
// exists. A missing hooks directory or script is not an error.
func (e *Executor) RunDir(packageDir string, hookType HookType, hctx Context) error {
	scriptPath := filepath.Join(packageDir, HooksDirName, string(hookType)+".tengo")
	content, err := os.ReadFile(scriptPath)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return errors.Wrapf(err, "failed to read hook script %s", scriptPath)
	}
	return e.Execute(string(content), hookType, hctx)
}

// Execute runs a hook script with the given context. A script signals
// failure by assigning a non-empty string or error to the `err` variable.
func (e *Executor) Execute(script string, hookType HookType, hctx Context) error {
	instance := tengo.NewScript([]byte(script))
	instance.SetImports(e.modules)

	bindings := map[string]interface{}{
		"packageName":    hctx.PackageName,
		"packageVersion": hctx.PackageVersion,
		"packagePath":    hctx.PackagePath,
	}
	for k, v := range hctx.Vars {
		bindings[k] = v
	}
	for name, value := range bindings {
		if err := instance.Add(name, value); err != nil {
			return errors.Wrapf(err, "failed to bind variable %q", name)
		}
	}

	compiled, err := instance.Run()
	if err != nil {
		return errors.Wrapf(errors.ErrHookExecution, "%s: %v", hookType, err)
	}

	if errVar := compiled.Get("err"); errVar != nil {
		switch v := errVar.Value().(type) {
		case error:
			return errors.Wrap(errors.ErrHookScript, v.Error())
		case string:
			if v != "" {
				return errors.Wrap(errors.ErrHookScript, v)
			}
		}
	}
	return nil
}
