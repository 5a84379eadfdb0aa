// Package instructions renders the install section of a README from the
// active repositories and splices it between marker comments.
package instructions

import (
	"fmt"
	"os"
	"strings"

	"github.com/termapps/publisher/internal/config"
	"github.com/termapps/publisher/internal/messages"
	"github.com/termapps/publisher/internal/repositories"
)

// Options controls where and how the section is written.
type Options struct {
	StartMarker string
	EndMarker   string
	Prefix      string
}

// DefaultOptions returns the markers and heading prefix used when none are given.
func DefaultOptions() Options {
	return Options{
		StartMarker: messages.InstructionsStartMarker,
		EndMarker:   messages.InstructionsEndMarker,
		Prefix:      messages.InstructionsPrefix,
	}
}

// Render builds the install section, starting with the start marker and ending
// just before where the end marker goes.
func Render(cfg *config.AppConfig, repos []repositories.Repository, opts Options) (string, error) {
	sections := make([]string, 0, len(repos))
	for _, repo := range repos {
		lines, err := repo.Instructions(cfg)
		if err != nil {
			return "", err
		}
		sections = append(sections, opts.Prefix+strings.Join(lines, "\n"))
	}

	return strings.Join([]string{
		opts.StartMarker,
		messages.InstructionsHeading,
		"",
		fmt.Sprintf(messages.InstructionsAvailableFmt, cfg.Name),
		"",
		strings.Join(sections, "\n\n"),
		"",
		opts.Prefix + messages.InstructionsDirect,
		"",
		fmt.Sprintf(messages.InstructionsReleasesFmt, cfg.Repository),
		"",
		messages.InstructionsDownload,
		"",
		"",
	}, "\n"), nil
}

// Splice replaces everything from the start marker up to, but not including,
// the end marker with section. source names the content in errors.
func Splice(content string, section string, opts Options, source string) (string, error) {
	start := strings.Index(content, opts.StartMarker)
	if start < 0 {
		return "", fmt.Errorf(messages.InstructionsStartMissingFmt, opts.StartMarker, source)
	}
	end := strings.Index(content, opts.EndMarker)
	if end < 0 {
		return "", fmt.Errorf(messages.InstructionsEndMissingFmt, opts.EndMarker, source)
	}
	if end < start {
		return "", fmt.Errorf(messages.InstructionsEndBeforeFmt, opts.EndMarker, source)
	}
	return content[:start] + section + content[end:], nil
}

// WriteFile renders the section for repos and splices it into path in place.
func WriteFile(path string, cfg *config.AppConfig, repos []repositories.Repository, opts Options) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf(messages.InstructionsReadFmt, path, err)
	}
	section, err := Render(cfg, repos, opts)
	if err != nil {
		return err
	}
	updated, err := Splice(string(data), section, opts, path)
	if err != nil {
		return err
	}
	info, err := os.Stat(path)
	if err != nil {
		return fmt.Errorf(messages.InstructionsReadFmt, path, err)
	}
	if err := os.WriteFile(path, []byte(updated), info.Mode().Perm()); err != nil {
		return fmt.Errorf(messages.InstructionsWriteFmt, path, err)
	}
	return nil
}
