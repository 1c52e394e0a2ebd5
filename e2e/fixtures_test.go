//go:build e2e && unix

package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// stubBody is what the default stub engine writes as the transcript.
const stubBody = "stub transcript from the end to end engine"

// ConfigOption is a function that configures workspace creation
type ConfigOption func(*configOptions)

type configOptions struct {
	mouse        bool
	hapticsBell  bool
	hapticsTone  bool
	showHints    bool
	engineScript string
	maxFileSize  int64
}

// WithMouse enables terminal mouse reporting in the generated config
func WithMouse() ConfigOption {
	return func(opts *configOptions) {
		opts.mouse = true
	}
}

// WithHints controls the key hint line in the generated config
func WithHints(show bool) ConfigOption {
	return func(opts *configOptions) {
		opts.showHints = show
	}
}

// WithEngineScript replaces the stub engine shell script. The script may
// reference the {input} and {output} placeholders; a successful engine has
// to write {output}.txt.
func WithEngineScript(script string) ConfigOption {
	return func(opts *configOptions) {
		opts.engineScript = script
	}
}

// WithMaxFileSize caps the accepted audio file size in bytes
func WithMaxFileSize(n int64) ConfigOption {
	return func(opts *configOptions) {
		opts.maxFileSize = n
	}
}

// CreateTestWorkspace creates a temporary directory holding an inbox, a
// transcript library and a config file pointing the app at both. The
// configured engine is a shell stub, so tests run without a real
// transcription model.
func (tf *TUITestFramework) CreateTestWorkspace(options ...ConfigOption) (string, error) {
	opts := &configOptions{
		showHints:    true,
		engineScript: fmt.Sprintf("printf '%s' > {output}.txt", stubBody),
		maxFileSize:  512 << 20,
	}
	for _, opt := range options {
		opt(opts)
	}

	tmpDir := tf.t.TempDir()
	tf.workspace = tmpDir

	if err := os.MkdirAll(tf.InboxDir(), 0755); err != nil {
		return "", err
	}
	if err := os.MkdirAll(tf.LibraryDir(), 0755); err != nil {
		return "", err
	}

	config := fmt.Sprintf(`version = 1
inbox_dir = "%s"
output_dir = "%s"

[engine]
command = "sh"
args = ["-c", "%s"]
model = "stub"
language = "en"
workers = 2
max_file_size = %d

[ui]
mouse = %t
haptics_bell = %t
haptics_tone = %t
show_hints = %t
`,
		tf.InboxDir(), tf.LibraryDir(), opts.engineScript, opts.maxFileSize,
		opts.mouse, opts.hapticsBell, opts.hapticsTone, opts.showHints)

	if err := os.WriteFile(tf.ConfigPath(), []byte(config), 0644); err != nil {
		return "", err
	}
	return tmpDir, nil
}

// ConfigPath returns the config file inside the workspace
func (tf *TUITestFramework) ConfigPath() string {
	return filepath.Join(tf.workspace, "config.toml")
}

// InboxDir returns the watched audio directory inside the workspace
func (tf *TUITestFramework) InboxDir() string {
	return filepath.Join(tf.workspace, "inbox")
}

// LibraryDir returns the transcript directory inside the workspace
func (tf *TUITestFramework) LibraryDir() string {
	return filepath.Join(tf.workspace, "transcripts")
}

// CreateAudioFile drops a small fake recording into the inbox
func (tf *TUITestFramework) CreateAudioFile(name string) (string, error) {
	return tf.CreateAudioFileSized(name, 0)
}

// CreateAudioFileSized drops a fake recording of at least size bytes
func (tf *TUITestFramework) CreateAudioFileSized(name string, size int64) (string, error) {
	if tf.workspace == "" {
		return "", fmt.Errorf("workspace not created")
	}

	payload := []byte("RIFFfake audio payload")
	if size > int64(len(payload)) {
		payload = append(payload, make([]byte, size-int64(len(payload)))...)
	}

	path := filepath.Join(tf.InboxDir(), name)
	if err := os.WriteFile(path, payload, 0644); err != nil {
		return "", err
	}
	return path, nil
}

// CreateTranscript seeds a finished transcript into the library. The store
// keeps a text file plus a TOML sidecar per entry; age pushes the creation
// time back so list order stays deterministic.
func (tf *TUITestFramework) CreateTranscript(id, title, body string, age time.Duration) error {
	if tf.workspace == "" {
		return fmt.Errorf("workspace not created")
	}

	textPath := filepath.Join(tf.LibraryDir(), id+".txt")
	if err := os.WriteFile(textPath, []byte(body), 0644); err != nil {
		return err
	}

	sidecar := fmt.Sprintf(`id = "%s"
title = "%s"
source = "%s.wav"
language = "en"
duration = "2m10s"
words = %d
created_at = %s
`,
		id, title, title, len(strings.Fields(body)),
		time.Now().Add(-age).UTC().Format(time.RFC3339))

	return os.WriteFile(filepath.Join(tf.LibraryDir(), id+".toml"), []byte(sidecar), 0644)
}
