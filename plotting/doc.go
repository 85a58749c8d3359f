// Package plotting renders sEMG signals and motor-unit decomposition
// results to image files for visual inspection: per-channel signal
// grids, channel correlation heatmaps and firing-raster scatter plots.
//
// All functions take an output path; the image format follows the file
// extension (PNG for the grid plots, which render on a raster canvas).
package plotting
