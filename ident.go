package totpgate

import (
	"sync"

	"github.com/bwmarrin/snowflake"
)

// snowflake.Epoch is package-global in the library and is read once during
// NewNode, so construction is serialized behind this mutex.
var snowflakeInitMu sync.Mutex

type snowflakeSource struct {
	node *snowflake.Node
}

func newSnowflakeSource(cfg IdentityConfig) (*snowflakeSource, error) {
	snowflakeInitMu.Lock()
	defer snowflakeInitMu.Unlock()

	snowflake.Epoch = cfg.EpochMillis
	node, err := snowflake.NewNode(cfg.Node)
	if err != nil {
		return nil, err
	}
	return &snowflakeSource{node: node}, nil
}

// Next returns the decimal form of a fresh snowflake id: timestamp, node,
// and sequence bits, monotonic under concurrent callers.
func (s *snowflakeSource) Next() string {
	return s.node.Generate().String()
}
