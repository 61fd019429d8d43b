// Package latency 为本地数据访问层模拟固定的网络时延。
// 延迟只是表现层面的（让交互更接近真实后端），不提供任何排序/公平性语义。
package latency

import (
	"context"
	"time"
)

// Wait 等待固定时长；等待期间尊重 ctx 取消。
// 等待结束后的业务逻辑不再有挂起点，一旦开始就会执行到底。
func Wait(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
