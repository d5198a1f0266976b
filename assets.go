package main

import "embed"

//go:embed views
var viewsFS embed.FS

//go:embed static
var staticFS embed.FS

//go:embed openapi.yaml
var apiSpec []byte

//go:embed static/js/sw.js
var serviceWorkerJS []byte

//go:embed static/manifest.json
var manifestJSON []byte
