package embed_test

import (
	"testing"

	"github.com/gzqccnu/MiniOS/internal/embed"
	"github.com/matryer/is"
)

func TestSymbol(t *testing.T) {
	is := is.New(t)
	is.Equal(embed.Symbol("README.md"), "README_MD")
	is.Equal(embed.Symbol("docs/intro-v2.txt"), "INTRO_V2_TXT")
	is.Equal(embed.Symbol(`docs\license.txt`), "LICENSE_TXT")
	is.Equal(embed.Symbol("1st.md"), "_1ST_MD")
	is.Equal(embed.Symbol("Kernel_Notes"), "KERNEL_NOTES")
	is.Equal(embed.Symbol("héllo.md"), "H__LLO_MD")
}

func TestValidSymbol(t *testing.T) {
	is := is.New(t)
	is.True(embed.ValidSymbol("README_MD"))
	is.True(embed.ValidSymbol("_doc2"))
	is.True(embed.ValidSymbol("x"))
	is.True(!embed.ValidSymbol(""))
	is.True(!embed.ValidSymbol("a b"))
	is.True(!embed.ValidSymbol("2nd"))
	is.True(!embed.ValidSymbol("doc-v2"))
	is.True(!embed.ValidSymbol("x[]"))
	// derived symbols are always valid
	for _, name := range []string{"README.md", "1st.md", "héllo.md", ".hidden", "a b.txt"} {
		is.True(embed.ValidSymbol(embed.Symbol(name)))
	}
}
