//go:build mage

package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/magefile/mage/mg"
	"github.com/magefile/mage/sh"
)

// sampleDir holds a generated page for trying the converter by hand.
const sampleDir = "samples"

// Sample writes a small saved page with a resource folder into samples/.
func Sample() error {
	files := map[string]string{
		"Sample Page.html":              samplePage,
		"Sample Page_files/diagram.png": "not really a png",
		"Sample Page_files/search.svg":  "<svg/>",
	}
	for name, content := range files {
		p := filepath.Join(sampleDir, name)
		if err := os.MkdirAll(filepath.Dir(p), 0o755); err != nil {
			return fmt.Errorf("creating %s: %w", filepath.Dir(p), err)
		}
		if err := os.WriteFile(p, []byte(content), 0o644); err != nil {
			return fmt.Errorf("writing %s: %w", p, err)
		}
		fmt.Println("  ", p)
	}
	return nil
}

// Convert builds the CLI and converts the page at path.
func Convert(path string) error {
	mg.Deps(Build)
	return sh.RunV(filepath.Join(binDir, binName), path)
}

const samplePage = `<!-- saved from url=(0032)https://example.com/tutorial/one -->
<html><head><link rel="canonical" href="https://example.com/tutorial/one"></head>
<body>
<img src="./Sample Page_files/search.svg">
<h1>Sample Tutorial</h1>
<h2>Overview</h2>
<img src="./Sample Page_files/diagram.png" alt="Architecture diagram">
<p>This page shows how a saved tutorial turns into Markdown.</p>
<h2>Python</h2>
<p>Call <code>main()</code> to run the example program.</p>
<pre><code><span>1</span>def main():
<span>2</span>    print(&quot;hello&quot;)</code></pre>
<script>window.boot()</script>
</body></html>
`
