package snowflake

import (
	"os"
	"strconv"

	"github.com/bwmarrin/snowflake"
)

var node *snowflake.Node

// 多实例部署时用 NODE_ID 区分节点，默认 1
func init() {
	id, err := strconv.ParseInt(os.Getenv("NODE_ID"), 10, 64)
	if err != nil || id < 0 || id > 1023 {
		id = 1
	}
	node, _ = snowflake.NewNode(id)
}

// GenID 生成全局递增 ID，用于上传文件命名
func GenID() int64 {
	return node.Generate().Int64()
}
