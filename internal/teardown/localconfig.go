package teardown

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/63klabs/atlantis/internal/samconfig"
)

type localConfigPruning struct{}

func (p *localConfigPruning) Name() string {
	return "local samconfig"
}

func (p *localConfigPruning) Run(ctx *Context) error {
	path := ctx.Target.ParamFilePath(ctx.Settings.SamconfigDir)
	stage := ctx.Target.StageID

	if _, err := os.Stat(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			ctx.Reporter.Warnf("Samconfig file %s not found", path)
		} else {
			ctx.Reporter.Errorf("Cannot read samconfig file %s: %v", path, err)
		}
		return nil
	}

	ok, err := ctx.confirm(fmt.Sprintf("Delete the %s entry from %s?", stage, path), false)
	if err != nil {
		return err
	}
	if !ok {
		ctx.Outcome.Skip(fmt.Sprintf("%s [%s]", path, stage), ReasonUserDeclined)
		ctx.Metrics.ResourceSkipped(string(ReasonUserDeclined))
		return nil
	}

	f, err := samconfig.Load(path)
	if err != nil {
		ctx.Reporter.Errorf("Error updating samconfig: %v", err)
		return nil
	}
	if f.RemoveStage(stage) {
		ctx.Reporter.Successf("Removed %s deployment from samconfig", stage)
	} else {
		ctx.Reporter.Warnf("Samconfig %s has no %s entry", path, stage)
	}

	if f.StageCount() > 0 {
		if err := f.Save(); err != nil {
			ctx.Reporter.Errorf("Error updating samconfig: %v", err)
			return nil
		}
		ctx.Reporter.Successf("Updated samconfig file %s", path)
		return nil
	}

	dirRemoved, err := samconfig.Remove(path)
	if err != nil {
		ctx.Reporter.Errorf("Error deleting samconfig: %v", err)
		return nil
	}
	ctx.Reporter.Successf("Deleted samconfig file %s (no deployments remaining)", path)
	if dirRemoved {
		ctx.Reporter.Printf("  removed empty directory for %s/%s", ctx.Target.Prefix, ctx.Target.ProjectID)
	}
	return nil
}
