package embed

// License is the banner placed at the top of every generated file. Trailing
// spaces are part of the output.
var License = []string{
	"Lrix",
	"Copyright (C) 2025 lrisguan <lrisguan@outlook.com>",
	"",
	"This program is released under the terms of the GNU General Public License version 2(GPLv2). ",
	"See https://opensource.org/licenses/GPL-2.0 for more information. ",
	"",
	"Project homepage: https://github.com/lrisguan/Lrix ",
	"Description: A scratch implemention of OS based on RISC-V ",
}

func notice(source string) []string {
	return []string{"Auto-generated from " + source + ", do not edit manually."}
}
