package repo

type TopSeller struct {
	Name string `json:"name"`
	Sold int    `json:"sold"`
}

type Metrics struct {
	TotalProducts int       `json:"totalProducts"`
	TotalStock    int       `json:"totalStock"`
	LowStockCount int       `json:"lowStockCount"`
	TotalSold     int       `json:"totalSold"`
	TopSeller     TopSeller `json:"topSeller"`
}

type MetricsRepository interface {
	GetDashboardMetrics(lowStockThreshold int) (Metrics, error)
}
