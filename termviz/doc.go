// Package termviz implements collab.Visualizer as an ANSI terminal
// renderer, using github.com/fatih/color for CLI feedback: a GPU-rendered
// board (as an ebiten-based GUI would draw one) isn't an option for a
// library with no GUI surface, so termviz is its terminal-native
// equivalent.
package termviz
