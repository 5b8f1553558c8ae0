package touch

// WriteResult records the outcome of writing the editor content to one file.
type WriteResult struct {
	Path string
	Err  error
}

// WriteAll writes content verbatim to every path, best effort: a failing
// file is recorded and the remaining files are still written. Each write
// refreshes the file's modification time again, as any editor save would.
func (e *Engine) WriteAll(paths []string, content string) []WriteResult {
	data := []byte(content)
	results := make([]WriteResult, 0, len(paths))
	for _, path := range paths {
		err := e.fsys.WriteFile(path, data)
		if err != nil {
			err = classify(err, "cannot write %q", path)
			e.logger.Error("write failed", "path", path, "error", err)
		} else {
			e.logger.Info("content written", "path", path, "bytes", len(data))
		}
		results = append(results, WriteResult{Path: path, Err: err})
	}
	return results
}
