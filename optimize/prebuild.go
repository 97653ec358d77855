// Package optimize 提供文档树的静默期索引预构建。
//
// jot 的 JIT 索引默认按观测到的访问开销惰性构建，构建本身会修改
// 树内状态，因此并发读竞争建索引属未定义行为。只读负载的出路是
// 在进入并发读取前把索引一次性建好: Prebuild 遍历整棵树，为所有
// 达到 JITSizeLimit 的容器立即物化查找表，之后的纯读取不再写树。
//
// 顶层子树间互不相交，天然无竞争，经 ants 协程池并行处理；
// 子树内部串行递归。
package optimize

import (
	"fmt"
	"runtime"
	"sync"

	"github.com/panjf2000/ants/v2"

	"github.com/uniyakcom/jot"
)

// Prebuild 为 root 整棵树的大容器预构建查找索引。
// 调用期间树必须静默（无并发读写）；重复调用是幂等的。
func Prebuild(root *jot.Value) error {
	switch root.Kind() {
	case jot.KindArray, jot.KindObject:
	default:
		return nil
	}
	pool, err := ants.NewPool(runtime.GOMAXPROCS(0))
	if err != nil {
		return fmt.Errorf("optimize: pool: %w", err)
	}
	defer pool.Release()

	prebuildOne(root)
	var wg sync.WaitGroup
	submit := func(child *jot.Value) {
		switch child.Kind() {
		case jot.KindArray, jot.KindObject:
		default:
			return
		}
		wg.Add(1)
		if err := pool.Submit(func() {
			defer wg.Done()
			prebuildTree(child)
		}); err != nil {
			// 池已满/已关闭时退回当前 goroutine 串行处理
			prebuildTree(child)
			wg.Done()
		}
	}
	if root.Kind() == jot.KindArray {
		root.ArrayEach(func(_ int, elem *jot.Value) bool {
			submit(elem)
			return true
		})
	} else {
		root.ObjectEach(func(_ string, val *jot.Value) bool {
			submit(val)
			return true
		})
	}
	wg.Wait()
	return nil
}

// prebuildTree 串行递归预构建一棵子树
func prebuildTree(v *jot.Value) {
	prebuildOne(v)
	v.ArrayEach(func(_ int, elem *jot.Value) bool {
		prebuildTree(elem)
		return true
	})
	v.ObjectEach(func(_ string, val *jot.Value) bool {
		prebuildTree(val)
		return true
	})
}

// prebuildOne 只为越过 JIT 体积门槛的容器建表，小容器维持线性扫描
func prebuildOne(v *jot.Value) {
	if v.Len() >= jot.JITSizeLimit {
		v.BuildIndex()
	}
}
