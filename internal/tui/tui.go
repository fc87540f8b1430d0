// Package tui is the interactive course menu built on huh forms.
package tui

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
	"github.com/gostonefire/coursecatalog/internal/display"
	"github.com/gostonefire/coursecatalog/internal/menu"
)

// Theme returns the huh theme with the accent color applied to focused elements.
func Theme(accentColor string) *huh.Theme {
	t := huh.ThemeCharm()
	p := lipgloss.Color(accentColor)

	t.Focused.Title = t.Focused.Title.Foreground(p).Bold(true)
	t.Focused.Base = t.Focused.Base.Border(lipgloss.RoundedBorder()).BorderForeground(p).Padding(0, 1)
	t.Focused.SelectSelector = t.Focused.SelectSelector.Foreground(p)
	t.Focused.SelectedOption = t.Focused.SelectedOption.Foreground(p)
	t.Focused.TextInput.Cursor = t.Focused.TextInput.Cursor.Foreground(p)
	t.Focused.TextInput.Prompt = t.Focused.TextInput.Prompt.Foreground(p)
	t.Blurred.Base = t.Blurred.Base.Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("238")).Padding(0, 1)

	return t
}

// Options returns the menu entries in display order
func Options() []huh.Option[menu.Choice] {
	return []huh.Option[menu.Choice]{
		huh.NewOption("Load Courses", menu.ChoiceLoad),
		huh.NewOption("Print Courses in Order", menu.ChoiceList),
		huh.NewOption("Find and Print Course", menu.ChoiceFind),
		huh.NewOption("Show Table Statistics", menu.ChoiceStat),
		huh.NewOption("Exit", menu.ChoiceExit),
	}
}

// validateNumber rejects blank course numbers in the input form
func validateNumber(s string) error {
	if strings.TrimSpace(s) == "" {
		return errors.New("course number can not be empty")
	}
	return nil
}

// Run shows the menu until Exit is selected or the user aborts with ctrl+c.
// Results are written to out, each selection is dispatched through menu.Dispatch.
func Run(c menu.Lookup, path, accentColor string, out io.Writer) error {
	theme := Theme(accentColor)
	r := display.NewRenderer(out, accentColor)

	for {
		var choice menu.Choice
		form := huh.NewForm(
			huh.NewGroup(
				huh.NewSelect[menu.Choice]().
					Title("Course catalog: " + path).
					Options(Options()...).
					Value(&choice),
			),
		).WithTheme(theme)

		if err := form.Run(); err != nil {
			if errors.Is(err, huh.ErrUserAborted) {
				return nil
			}
			return err
		}

		req := menu.Request{Choice: choice, Path: path}
		if choice == menu.ChoiceFind {
			input := huh.NewInput().
				Title("Course number").
				Validate(validateNumber).
				Value(&req.Number)
			if err := huh.NewForm(huh.NewGroup(input)).WithTheme(theme).Run(); err != nil {
				if errors.Is(err, huh.ErrUserAborted) {
					continue
				}
				return err
			}
		}

		quit, err := menu.Dispatch(c, req, r, out)
		if err != nil {
			if _, werr := fmt.Fprintln(out, r.Error(err)); werr != nil {
				return werr
			}
		}
		if quit {
			return nil
		}
	}
}
