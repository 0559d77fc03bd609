package ui

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gomarkdown/markdown"
	"github.com/gomarkdown/markdown/html"
	"github.com/gomarkdown/markdown/parser"
)

// methodsMarkdown documents the statistical methods for the renderer's help
// panel. Kept in markdown so the text stays reviewable next to the code that
// implements it.
const methodsMarkdown = `# Statistical methods

## Clustering

Rows and columns are ordered by agglomerative hierarchical clustering over
Euclidean distances. Missing cells are skipped pairwise when comparing two
vectors; rows with no jointly observed cells are treated as infinitely far
apart. Three linkage rules are available:

- **single** - distance between clusters is the minimum member distance
- **complete** - distance between clusters is the maximum member distance
- **average** - UPGMA, the size-weighted mean of member distances

## Two-group tests

- **t-test (unpaired)** - Welch's unequal-variance t-test with
  Welch-Satterthwaite degrees of freedom.
- **t-test (paired)** - one-sample t-test on the element-wise differences.
- **Mann-Whitney U** - rank-sum test with tie-averaged ranks; p-value from
  the normal approximation of U.
- **Wilcoxon signed-rank** - paired rank test; zero differences are dropped
  before ranking.

## Multi-group tests

- **One-way ANOVA** - between/within sum-of-squares decomposition, F
  distribution with (k-1, N-k) degrees of freedom.
- **Kruskal-Wallis** - rank-based k-group test, chi-squared approximation
  with k-1 degrees of freedom.
- **Bonferroni post-hoc** - all pairwise Welch t-tests, each p-value
  multiplied by the number of comparisons and capped at 1.

## Significance tiers

| p-value | tier |
|---|---|
| p < 0.001 | *** |
| p < 0.01 | ** |
| p < 0.05 | * |
| otherwise | ns |
`

func (s *Server) handleMethods(c *gin.Context) {
	p := parser.NewWithExtensions(parser.CommonExtensions)
	renderer := html.NewRenderer(html.RendererOptions{Flags: html.CommonFlags})
	out := markdown.ToHTML([]byte(methodsMarkdown), p, renderer)
	c.Data(http.StatusOK, "text/html; charset=utf-8", out)
}
