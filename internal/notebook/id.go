package notebook

import (
	"fmt"

	"github.com/bwmarrin/snowflake"
)

// blockIDGen produces unique, sortable block IDs
type blockIDGen struct {
	node *snowflake.Node
}

func newBlockIDGen() (*blockIDGen, error) {
	node, err := snowflake.NewNode(1)
	if err != nil {
		return nil, fmt.Errorf("failed to create block ID generator: %w", err)
	}
	return &blockIDGen{node: node}, nil
}

func (g *blockIDGen) Generate() string {
	return g.node.Generate().Base58()
}
