package model

// Orthology labels, exactly one per protein node in the orthology view.
const (
	OrthoNonexist  = "ortho_nonexist"
	OrthoExistsIn  = "ortho_exists_in"
	OrthoExistsOut = "ortho_exists_out"
	NonOrtho       = "nonortho"
)

// Alignment labels.
const (
	AlignOrtho    = "align_ortho"
	AlignNonOrtho = "align_nonortho"
	NonAlignOrtho = "nonalign_ortho"
)

// Edge classes of the alignment view.
const (
	OrthoEdge       = "ortho_edge"
	AlignEdge       = "align_edge"
	AlignOrthoEdge  = "alignortho_edge"
	InteractionEdge = "edge"
	PlainEdge       = "plain_interaction"
)

const (
	TagProtein   = "protein"
	TagQuery     = "query"
	TagContainer = "container"
	TagAlignment = "alignment"
	TagCompound  = "compound"
)
