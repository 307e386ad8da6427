package serve

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"

	"github.com/mpihlak/goracer/log"
)

const wasmFile = "racer.wasm"

// prepareWebDir builds the game for the browser and puts the loader files
// next to it.
func prepareWebDir(ctx context.Context, dir string) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create web dir: %w", err)
	}
	log.Info("Building WASM version", log.String("dir", dir))
	if err := buildWASM(ctx, dir); err != nil {
		return fmt.Errorf("build wasm: %w", err)
	}
	if err := copyWASMExec(dir); err != nil {
		return err
	}
	return createHTMLFile(dir)
}

func buildWASM(ctx context.Context, dir string) error {
	cmd := exec.CommandContext(ctx, "go", "build", "-o", filepath.Join(dir, wasmFile), "./cmd/racer")
	cmd.Env = append(os.Environ(), "GOOS=js", "GOARCH=wasm")
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	return cmd.Run()
}

// copyWASMExec copies wasm_exec.js from the Go installation. Its location
// moved from misc/wasm to lib/wasm in Go 1.24.
func copyWASMExec(dir string) error {
	goRoot := runtime.GOROOT()
	var data []byte
	var err error
	for _, sub := range []string{"lib", "misc"} {
		data, err = os.ReadFile(filepath.Join(goRoot, sub, "wasm", "wasm_exec.js"))
		if err == nil {
			break
		}
	}
	if err != nil {
		return fmt.Errorf("read wasm_exec.js: %w", err)
	}
	if err := os.WriteFile(filepath.Join(dir, "wasm_exec.js"), data, 0o644); err != nil {
		return fmt.Errorf("copy wasm_exec.js: %w", err)
	}
	return nil
}

// createHTMLFile writes the loader page unless one already exists.
func createHTMLFile(dir string) error {
	htmlPath := filepath.Join(dir, "index.html")
	if _, err := os.Stat(htmlPath); err == nil {
		log.Info("index.html already exists, keeping existing version")
		return nil
	} else if !errors.Is(err, os.ErrNotExist) {
		return err
	}
	return os.WriteFile(htmlPath, []byte(indexHTML), 0o644)
}

const indexHTML = `<!DOCTYPE html>
<html>
<head>
    <meta charset="utf-8">
    <title>Racer</title>
    <style>
        body {
            margin: 0;
            background: #1d2b1f;
            display: flex;
            flex-direction: column;
            justify-content: center;
            align-items: center;
            min-height: 100vh;
            font-family: -apple-system, BlinkMacSystemFont, 'Segoe UI', Roboto, sans-serif;
            color: white;
        }
        .loading { color: #ffd200; font-size: 1.2em; padding: 40px; }
        .error { color: #ff6666; padding: 20px; border: 1px solid #ff6666; border-radius: 8px; }
    </style>
</head>
<body>
    <div class="loading" id="loading">Loading racer...</div>
    <div class="error" style="display: none;" id="error"></div>

    <script src="wasm_exec.js"></script>
    <script>
        const go = new Go();
        WebAssembly.instantiateStreaming(fetch("` + wasmFile + `"), go.importObject)
            .then((result) => {
                document.getElementById('loading').style.display = 'none';
                go.run(result.instance);
            })
            .catch((err) => {
                console.error('Failed to load WASM:', err);
                document.getElementById('loading').style.display = 'none';
                const e = document.getElementById('error');
                e.style.display = 'block';
                e.textContent = err.toString();
            });
    </script>
</body>
</html>
`
