package scaffold

import (
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"strings"
	"text/template"
)

const (
	daySet          = "day"
	namePlaceholder = "_name_"
	templateSuffix  = ".tmpl"
	binDir          = "src/bin" // executable stub, relative to the day root
)

// ErrNoDayName is returned when a directory has no final path component to
// name the day after (the filesystem root, for example).
var ErrNoDayName = errors.New("cannot derive a day name from directory")

// Options tune the generated files.
type Options struct {
	DuneLang string // dune language version; empty means DefaultDuneLang
}

// DayData holds the template variables available to .tmpl files.
type DayData struct {
	Name     string // e.g., "day7"
	DuneLang string // e.g., "1.2"
}

// Result holds the outcome of a scaffold run.
type Result struct {
	OutputDir   string
	Name        string
	Files       []string // slash-separated, relative to OutputDir
	Overwritten []string // subset of Files that existed before the run
}

// DayName returns the final path component of dir after making it absolute.
func DayName(dir string) (string, error) {
	abs, err := filepath.Abs(dir)
	if err != nil {
		return "", fmt.Errorf("resolving %s: %w", dir, err)
	}
	name := filepath.Base(abs)
	if name == "." || name == string(filepath.Separator) {
		return "", fmt.Errorf("%w: %s", ErrNoDayName, dir)
	}
	return name, nil
}

// Create makes dir (and any missing parents) and scaffolds a day into it.
// An existing directory is not an error.
func Create(dir string, opts Options) (*Result, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("creating day directory %s: %w", dir, err)
	}
	return Init(dir, opts)
}

// Init writes the day files into dir, which must already exist. Every file
// is overwritten unconditionally, so running Init twice yields the same tree.
func Init(dir string, opts Options) (*Result, error) {
	name, err := DayName(dir)
	if err != nil {
		return nil, err
	}
	lang, err := ParseDuneLang(opts.DuneLang)
	if err != nil {
		return nil, err
	}
	data := &DayData{Name: name, DuneLang: lang}

	binPath := filepath.Join(dir, filepath.FromSlash(binDir))
	if err := os.MkdirAll(binPath, 0755); err != nil {
		return nil, fmt.Errorf("creating %s: %w", binPath, err)
	}

	result := &Result{
		OutputDir: dir,
		Name:      name,
	}

	root := path.Join("scaffolds", daySet)
	err = fs.WalkDir(scaffoldFS, root, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		rel := strings.TrimPrefix(p, root+"/")
		outRel, content, err := render(p, rel, data)
		if err != nil {
			return err
		}

		outPath := filepath.Join(dir, filepath.FromSlash(outRel))
		if err := os.MkdirAll(filepath.Dir(outPath), 0755); err != nil {
			return fmt.Errorf("creating %s: %w", filepath.Dir(outPath), err)
		}
		if _, err := os.Stat(outPath); err == nil {
			result.Overwritten = append(result.Overwritten, outRel)
		}
		if err := os.WriteFile(outPath, content, 0644); err != nil {
			return fmt.Errorf("writing %s: %w", outPath, err)
		}

		result.Files = append(result.Files, outRel)
		return nil
	})
	if err != nil {
		return nil, err
	}

	return result, nil
}

// render returns the output path (slash-separated) and content for the
// embedded template at p. Only .tmpl files go through text/template; the
// OCaml sources contain % verbs and braces that must reach disk untouched.
func render(p, rel string, data *DayData) (string, []byte, error) {
	raw, err := fs.ReadFile(scaffoldFS, p)
	if err != nil {
		return "", nil, fmt.Errorf("reading template %s: %w", p, err)
	}

	outRel := strings.ReplaceAll(rel, namePlaceholder, data.Name)
	if !strings.HasSuffix(outRel, templateSuffix) {
		return outRel, raw, nil
	}
	outRel = strings.TrimSuffix(outRel, templateSuffix)

	tmpl, err := template.New(path.Base(p)).Option("missingkey=error").Parse(string(raw))
	if err != nil {
		return "", nil, fmt.Errorf("parsing template %s: %w", p, err)
	}
	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return "", nil, fmt.Errorf("executing template %s: %w", p, err)
	}
	return outRel, buf.Bytes(), nil
}
