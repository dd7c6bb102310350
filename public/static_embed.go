package public

import (
	"embed"
	"io/fs"
)

//go:embed static/*
var static embed.FS

// StaticFS returns the embedded assets rooted at static/, served under /assets/.
func StaticFS() (fs.FS, error) {
	return fs.Sub(static, "static")
}
