package fiveoneone

import (
	"context"
	"errors"
	"io"
	"net/url"
	"os"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog/log"

	"github.com/theoremus-urban-solutions/go-fiveoneone/config"
)

// FallbackFilename is used when the server suggests no usable filename.
const FallbackFilename = "download"

// filenameFromContentDisposition extracts the filename= parameter from a
// Content-Disposition header such as `attachment; filename="feed.zip"`.
// It returns "" for a missing or malformed header; it never fails.
func filenameFromContentDisposition(header string) string {
	if header == "" {
		return ""
	}
	for _, part := range strings.Split(header, ";") {
		part = strings.TrimSpace(part)
		if !strings.HasPrefix(strings.ToLower(part), "filename=") {
			continue
		}
		v := strings.TrimSpace(part[len("filename="):])
		if v == `"` {
			v = ""
		} else if len(v) >= 2 && strings.HasPrefix(v, `"`) && strings.HasSuffix(v, `"`) {
			v = v[1 : len(v)-1]
		}
		return safeFilename(v)
	}
	return ""
}

// safeFilename keeps only the final path element of a server supplied name so
// it cannot escape the destination directory.
func safeFilename(name string) string {
	if strings.TrimSpace(name) == "" {
		return ""
	}
	name = filepath.Base(filepath.FromSlash(strings.ReplaceAll(name, `\`, "/")))
	if name == "." || name == ".." || name == string(filepath.Separator) {
		return ""
	}
	return name
}

// suggestedFilename applies the fallback to filenameFromContentDisposition.
func suggestedFilename(header string) string {
	if name := filenameFromContentDisposition(header); name != "" {
		return name
	}
	return FallbackFilename
}

// resolveDestination decides where a download lands:
//   - no destination: the working directory plus the suggested name
//   - an existing directory: inside it, under the suggested name
//   - a path without extension that is not an existing file: treated as a
//     directory to create, with the suggested name inside it. Dotfile names
//     such as ".cache" and names ending in "." have no extension.
//   - anything else: that exact file path
func resolveDestination(dest, suggested string) (string, error) {
	if dest == "" {
		wd, err := os.Getwd()
		if err != nil {
			return "", err
		}
		return filepath.Join(wd, suggested), nil
	}

	info, err := os.Stat(dest)
	switch {
	case err == nil && info.IsDir():
		return filepath.Join(dest, suggested), nil
	case err == nil:
		return dest, nil
	case !errors.Is(err, os.ErrNotExist):
		return "", err
	}

	if fileSuffix(dest) == "" {
		return filepath.Join(dest, suggested), nil
	}
	return dest, nil
}

// fileSuffix returns the extension of the last path element, dot included.
// A leading or trailing dot does not start an extension.
func fileSuffix(path string) string {
	name := filepath.Base(path)
	i := strings.LastIndex(name, ".")
	if i <= 0 || i == len(name)-1 {
		return ""
	}
	return name[i:]
}

// download streams a response body to disk in chunkSize pieces. The status is
// checked before anything is created on disk and parent directories of the
// resolved path are created as needed. The body goes to a temporary file next
// to the target which is renamed over it once complete, so a failed transfer
// leaves an existing file untouched. It returns the path written.
func (c *Client) download(ctx context.Context, endpoint string, params url.Values, dest string) (string, error) {
	resp, safeURL, err := c.get(ctx, endpoint, params)
	if err != nil {
		return "", err
	}
	defer func() { _ = resp.Body.Close() }()

	out, err := resolveDestination(dest, suggestedFilename(resp.Header.Get("Content-Disposition")))
	if err != nil {
		return "", &TransportError{Op: "resolve destination", URL: safeURL, Err: err}
	}
	dir := filepath.Dir(out)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", &TransportError{Op: "create directory", URL: safeURL, Err: err}
	}

	f, err := os.CreateTemp(dir, "."+filepath.Base(out)+".*.part")
	if err != nil {
		return "", &TransportError{Op: "create file", URL: safeURL, Err: err}
	}
	tmp := f.Name()
	if err := f.Chmod(0o644); err != nil {
		_ = f.Close()
		_ = os.Remove(tmp)
		return "", &TransportError{Op: "create file", URL: safeURL, Err: err}
	}

	written, err := copyChunks(f, resp.Body, c.chunkSize)
	if cerr := f.Close(); err == nil && cerr != nil {
		err = &TransportError{Op: "write file", Err: cerr}
	}
	if err == nil {
		if rerr := os.Rename(tmp, out); rerr != nil {
			err = &TransportError{Op: "rename file", Err: rerr}
		}
	}
	if err != nil {
		_ = os.Remove(tmp)
		var te *TransportError
		if errors.As(err, &te) {
			te.URL = safeURL
		}
		return "", err
	}

	log.Debug().Str("url", safeURL).Str("path", out).Int64("bytes", written).Msg("download complete")
	return out, nil
}

// copyChunks copies r to w one chunk at a time. Empty reads are skipped.
func copyChunks(w io.Writer, r io.Reader, chunkSize int) (int64, error) {
	if chunkSize <= 0 {
		chunkSize = config.DefaultChunkSize
	}
	buf := make([]byte, chunkSize)
	var total int64
	for {
		n, rerr := r.Read(buf)
		if n > 0 {
			m, werr := w.Write(buf[:n])
			total += int64(m)
			if werr != nil {
				return total, &TransportError{Op: "write file", Err: werr}
			}
		}
		if rerr == io.EOF {
			return total, nil
		}
		if rerr != nil {
			return total, &TransportError{Op: "read body", Err: rerr}
		}
	}
}
