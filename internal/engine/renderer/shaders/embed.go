// Package shaders provides embedded GLSL shader sources.
package shaders

import _ "embed"

// TerrainVertexShader transforms height field vertices.
//
//go:embed terrain.vert
var TerrainVertexShader string

// TerrainFragmentShader applies double-sided Lambert shading and linear fog.
//
//go:embed terrain.frag
var TerrainFragmentShader string
