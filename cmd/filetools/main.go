// Command filetools bundles the small packaging helpers used around the
// application: a static file server with directory listing and
// zip-download, a working-tree archiver, and a build-output staging
// copy.
package main

import (
	"archive/zip"
	"flag"
	"fmt"
	"html"
	"io"
	"io/fs"
	"log/slog"
	"net/http"
	"os"
	"path"
	"path/filepath"
	"strings"
)

func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	if len(os.Args) < 2 {
		fmt.Fprintln(os.Stderr, "usage: filetools <serve|archive|stage> [flags]")
		os.Exit(2)
	}

	var err error
	switch os.Args[1] {
	case "serve":
		err = runServe(os.Args[2:], logger)
	case "archive":
		err = runArchive(os.Args[2:], logger)
	case "stage":
		err = runStage(os.Args[2:], logger)
	default:
		fmt.Fprintf(os.Stderr, "unknown subcommand %q\n", os.Args[1])
		os.Exit(2)
	}
	if err != nil {
		logger.Error("Command failed", slog.String("error", err.Error()))
		os.Exit(1)
	}
}

func newFlagSet(name string) *flag.FlagSet {
	fl := flag.NewFlagSet(name, flag.ContinueOnError)
	fl.SetOutput(os.Stderr)
	return fl
}

// contentTypes maps file extensions served by the file server. Unknown
// extensions fall back to text/plain.
var contentTypes = map[string]string{
	".html": "text/html",
	".js":   "text/javascript",
	".css":  "text/css",
	".json": "application/json",
	".png":  "image/png",
	".jpg":  "image/jpeg",
	".wav":  "audio/wav",
	".mp3":  "audio/mpeg",
	".svg":  "image/svg+xml",
	".pdf":  "application/pdf",
	".zip":  "application/zip",
	".doc":  "application/msword",
	".eot":  "application/vnd.ms-fontobject",
	".ttf":  "application/x-font-ttf",
}

// archiveSkipDirs are directory names excluded from archives.
var archiveSkipDirs = map[string]bool{
	"node_modules": true,
	"dist":         true,
	"vendor":       true,
	".git":         true,
	".bolt":        true,
}

// archiveSkipFiles are individual file names excluded from archives.
var archiveSkipFiles = map[string]bool{
	"package-lock.json": true,
	"project.zip":       true,
}

func runServe(args []string, logger *slog.Logger) error {
	fl := newFlagSet("serve")
	dir := fl.String("dir", ".", "directory to serve")
	port := fl.String("port", "3000", "port to listen on")
	if err := fl.Parse(args); err != nil {
		return err
	}

	root, err := filepath.Abs(*dir)
	if err != nil {
		return err
	}

	srv := &fileServer{root: root, logger: logger}
	logger.Info("File server running", slog.String("addr", "http://localhost:"+*port+"/"))
	return http.ListenAndServe(":"+*port, srv)
}

type fileServer struct {
	root   string
	logger *slog.Logger
}

func (s *fileServer) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	// Strip any leading parent-directory escapes before joining.
	cleaned := path.Clean("/" + r.URL.Path)
	target := filepath.Join(s.root, filepath.FromSlash(cleaned))

	info, err := os.Stat(target)
	if err != nil {
		if os.IsNotExist(err) {
			http.Error(w, fmt.Sprintf("File %s not found!", r.URL.Path), http.StatusNotFound)
			return
		}
		http.Error(w, fmt.Sprintf("Error getting the file: %v.", err), http.StatusInternalServerError)
		return
	}

	if info.IsDir() {
		if r.URL.RawQuery == "download" {
			s.serveZip(w, target)
			return
		}
		s.serveListing(w, cleaned, target)
		return
	}

	s.serveFile(w, target)
}

func (s *fileServer) serveListing(w http.ResponseWriter, urlPath, target string) {
	entries, err := os.ReadDir(target)
	if err != nil {
		http.Error(w, fmt.Sprintf("Error reading directory: %v.", err), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html")
	var b strings.Builder
	b.WriteString("<html><body><ul>")
	fmt.Fprintf(&b, "<h1>Directory: %s</h1>", html.EscapeString(urlPath))
	b.WriteString(`<li><a href="..">..</a></li>`)
	for _, e := range entries {
		href := path.Join(urlPath, e.Name())
		fmt.Fprintf(&b, `<li><a href="%s">%s</a></li>`, href, html.EscapeString(e.Name()))
	}
	fmt.Fprintf(&b, `<br><a href="%s?download">Download this directory as ZIP</a>`, urlPath)
	b.WriteString("</ul></body></html>")
	io.WriteString(w, b.String())
}

func (s *fileServer) serveZip(w http.ResponseWriter, target string) {
	name := filepath.Base(target) + ".zip"
	w.Header().Set("Content-Type", "application/zip")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", name))

	zw := zip.NewWriter(w)
	defer zw.Close()

	// Headers are already written, so a mid-walk failure can only be
	// surfaced in the log; the client receives a truncated archive.
	err := filepath.WalkDir(target, func(p string, d fs.DirEntry, err error) error {
		if err != nil || d.IsDir() {
			return err
		}
		rel, err := filepath.Rel(target, p)
		if err != nil {
			return err
		}
		return addFileToZip(zw, p, filepath.ToSlash(rel))
	})
	if err != nil {
		s.logger.Error("Zip download incomplete",
			slog.String("dir", target), slog.String("error", err.Error()))
	}
}

func (s *fileServer) serveFile(w http.ResponseWriter, target string) {
	f, err := os.Open(target)
	if err != nil {
		http.Error(w, fmt.Sprintf("Error reading file: %v.", err), http.StatusInternalServerError)
		return
	}
	defer f.Close()

	ct := contentTypes[strings.ToLower(filepath.Ext(target))]
	if ct == "" {
		ct = "text/plain"
	}
	w.Header().Set("Content-Type", ct)
	io.Copy(w, f)
}

func runArchive(args []string, logger *slog.Logger) error {
	fl := newFlagSet("archive")
	srcDir := fl.String("dir", ".", "directory to archive")
	out := fl.String("out", "project.zip", "output zip path")
	if err := fl.Parse(args); err != nil {
		return err
	}

	outFile, err := os.Create(*out)
	if err != nil {
		return fmt.Errorf("failed to create archive: %w", err)
	}
	defer outFile.Close()

	zw := zip.NewWriter(outFile)
	err = filepath.WalkDir(*srcDir, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			if archiveSkipDirs[d.Name()] {
				return fs.SkipDir
			}
			return nil
		}
		if archiveSkipFiles[d.Name()] {
			return nil
		}
		rel, err := filepath.Rel(*srcDir, p)
		if err != nil {
			return err
		}
		return addFileToZip(zw, p, filepath.ToSlash(rel))
	})
	if err != nil {
		zw.Close()
		return fmt.Errorf("failed to walk source tree: %w", err)
	}
	if err := zw.Close(); err != nil {
		return fmt.Errorf("failed to finalize archive: %w", err)
	}

	logger.Info("Project archived", slog.String("out", *out))
	return nil
}

func runStage(args []string, logger *slog.Logger) error {
	fl := newFlagSet("stage")
	src := fl.String("src", filepath.Join("dist", "index.html"), "built artifact to stage")
	dest := fl.String("dest", "project-management-app.html", "destination path")
	if err := fl.Parse(args); err != nil {
		return err
	}

	in, err := os.Open(*src)
	if err != nil {
		return fmt.Errorf("failed to open source: %w", err)
	}
	defer in.Close()

	out, err := os.Create(*dest)
	if err != nil {
		return fmt.Errorf("failed to create destination: %w", err)
	}
	defer out.Close()

	if _, err := io.Copy(out, in); err != nil {
		return fmt.Errorf("failed to copy: %w", err)
	}

	logger.Info("Build file staged", slog.String("src", *src), slog.String("dest", *dest))
	return nil
}

func addFileToZip(zw *zip.Writer, srcPath, name string) error {
	f, err := os.Open(srcPath)
	if err != nil {
		return err
	}
	defer f.Close()

	w, err := zw.Create(name)
	if err != nil {
		return err
	}
	_, err = io.Copy(w, f)
	return err
}
