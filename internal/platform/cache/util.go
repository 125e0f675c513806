package cache

import "time"

// TimeUntilNextQuarterHour は次の15分境界（:00/:15/:30/:45）までの期間を返します。
// 日中足の軸は15分刻みで伸びるため、境界でキャッシュが切れるようにします。
func TimeUntilNextQuarterHour() time.Duration {
	return timeUntilNextQuarterHour(time.Now())
}

func timeUntilNextQuarterHour(now time.Time) time.Duration {
	next := now.Truncate(15 * time.Minute).Add(15 * time.Minute)
	return next.Sub(now)
}
