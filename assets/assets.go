// Package assets holds the boot screen images in run-length form.
package assets

//go:generate go run ../cmd/mkimage -in logo.png -name Logo -doc "Logo is the boot logo, drawn at the top left of the screen." -out logo_gen.go
//go:generate go run ../cmd/mkimage -in version.png -name Version -doc "Version is the bootloader version banner, drawn centred at the bottom." -out version_gen.go
