package cli

import (
	"context"
	"errors"
	"fmt"
	"slices"

	"github.com/AlecAivazis/survey/v2"
	"github.com/AlecAivazis/survey/v2/terminal"

	"github.com/roach88/boxcar/internal/composer"
	"github.com/roach88/boxcar/internal/recipe"
)

// ErrPromptAborted is returned when the user interrupts a prompt.
var ErrPromptAborted = errors.New("prompt aborted")

// VariantPicker chooses one module out of a variant group.
type VariantPicker interface {
	Pick(ctx context.Context, group string, options []string, current string) (string, error)
}

type surveyPicker struct{}

func (surveyPicker) Pick(ctx context.Context, group string, options []string, current string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	var out string
	prompt := &survey.Select{
		Message: fmt.Sprintf("Which %s module?", group),
		Options: options,
		Default: current,
	}
	if err := survey.AskOne(prompt, &out); err != nil {
		if errors.Is(err, terminal.InterruptErr) {
			return "", ErrPromptAborted
		}
		return "", err
	}
	return out, nil
}

// chooseVariants asks which member of every variant group the recipe uses
// should be applied, and swaps the recipe's choice in place.
func chooseVariants(ctx context.Context, picker VariantPicker, reg *composer.Registry, r *recipe.Recipe) (*recipe.Recipe, error) {
	groups := reg.Variants()
	for _, group := range reg.VariantNames() {
		members := groups[group]
		current := ""
		for _, m := range members {
			if slices.Contains(r.Modules, m) {
				current = m
				break
			}
		}
		if current == "" || len(members) < 2 {
			continue
		}
		choice, err := picker.Pick(ctx, group, members, current)
		if err != nil {
			return nil, err
		}
		if choice != current {
			r, _ = r.Replace(current, choice)
		}
	}
	return r, nil
}
