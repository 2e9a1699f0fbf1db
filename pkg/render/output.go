// Package render writes generated plans and profiles to disk and converts
// plan markdown to PDF via pandoc.
package render

import (
	"encoding/json"
	"os"
	"os/exec"
	"path/filepath"

	"github.com/pkg/errors"

	"github.com/joseantonio2001/Running-Fit-Tech/pkg/llm"
	"github.com/joseantonio2001/Running-Fit-Tech/pkg/profile"
)

// WriteMarkdown writes markdown content to a file, creating the output
// directory as needed.
func WriteMarkdown(content, outputPath string) (err error) {
	err = ensureDir(outputPath)
	if err != nil {
		return err
	}

	err = os.WriteFile(outputPath, []byte(content), 0600)
	if err != nil {
		err = errors.Wrapf(err, "failed to write markdown file: %s", outputPath)
		return err
	}

	return err
}

// WritePlanJSON writes the full generated plan, metadata included, as
// indented JSON.
func WritePlanJSON(plan *llm.GeneratedPlan, outputPath string) (err error) {
	err = ensureDir(outputPath)
	if err != nil {
		return err
	}

	var data []byte
	data, err = json.MarshalIndent(plan, "", "  ")
	if err != nil {
		err = errors.Wrap(err, "failed to marshal plan")
		return err
	}

	err = os.WriteFile(outputPath, data, 0600)
	if err != nil {
		err = errors.Wrapf(err, "failed to write plan file: %s", outputPath)
		return err
	}

	return err
}

// WriteProfileJSON writes the athlete profile next to its plan so each
// plan directory is self-contained.
func WriteProfileJSON(p *profile.AthleteProfile, outputPath string) (err error) {
	err = ensureDir(outputPath)
	if err != nil {
		return err
	}

	err = p.Save(outputPath)

	return err
}

// RenderPDF converts plan markdown to PDF using pandoc. templatePath is
// optional; when empty, pandoc's default layout applies.
func RenderPDF(markdownPath, outputPath, templatePath string) (err error) {
	// Validate pandoc exists
	err = checkPandocExists()
	if err != nil {
		return err
	}

	// Validate input files exist
	err = validateFiles(markdownPath)
	if err != nil {
		return err
	}

	err = ensureDir(outputPath)
	if err != nil {
		return err
	}

	args := []string{
		"-f", "markdown",
		"-t", "pdf",
		"-o", outputPath,
		"--number-sections=false",
	}
	if templatePath != "" {
		err = validateFiles(templatePath)
		if err != nil {
			return err
		}
		args = append(args, "--template", templatePath)
	}
	args = append(args, markdownPath)

	//nolint:noctx // Context not available for exec.Command - pandoc is a long-running subprocess
	cmd := exec.Command("pandoc", args...)

	// Capture output
	var output []byte
	output, err = cmd.CombinedOutput()
	if err != nil {
		err = errors.Wrapf(err, "pandoc failed: %s", string(output))
		return err
	}

	return err
}

// checkPandocExists verifies pandoc is installed.
func checkPandocExists() (err error) {
	//nolint:noctx // Context not available for version check
	cmd := exec.Command("pandoc", "--version")
	err = cmd.Run()
	if err != nil {
		err = errors.New("pandoc not found in PATH (install pandoc to generate PDFs)")
		return err
	}
	return err
}

// validateFiles checks that required files exist.
func validateFiles(paths ...string) (err error) {
	for _, path := range paths {
		_, err = os.Stat(path)
		if os.IsNotExist(err) {
			err = errors.Errorf("file not found: %s", path)
			return err
		}
	}
	return err
}

func ensureDir(outputPath string) (err error) {
	outputDir := filepath.Dir(outputPath)
	err = os.MkdirAll(outputDir, 0750)
	if err != nil {
		err = errors.Wrapf(err, "failed to create output directory: %s", outputDir)
		return err
	}
	return err
}
