package dto

// InventoryAnalysisDTO respuesta estructurada del análisis de inventario con IA.
// El modelo devuelve exactamente esta forma en JSON; si la llamada falla, el
// caso de uso construye un fallback con estadísticas locales.
type InventoryAnalysisDTO struct {
	Summary            AnalysisSummary       `json:"summary"`
	TopSellingProducts []TopSellingProduct   `json:"topSellingProducts"`
	Recommendations    []StockRecommendation `json:"recommendations"`
	Insights           []PatternInsight      `json:"insights"`
}

// AnalysisSummary resumen general de salud del inventario.
type AnalysisSummary struct {
	TotalProducts  int    `json:"totalProducts"`
	TotalUnitsSold int64  `json:"totalUnitsSold"`
	HealthStatus   string `json:"healthStatus"` // Excellent, Good, Warning, Critical
	Description    string `json:"description"`
}

// TopSellingProduct producto destacado por unidades vendidas.
type TopSellingProduct struct {
	ProductID    string  `json:"productId"`
	ProductTitle string  `json:"productTitle"`
	UnitsSold    int64   `json:"unitsSold"`
	Revenue      float64 `json:"revenue"`
}

// StockRecommendation sugerencia de reposición.
type StockRecommendation struct {
	ProductID          string `json:"productId"`
	ProductTitle       string `json:"productTitle"`
	CurrentStock       int64  `json:"currentStock"`
	RecommendedRestock int64  `json:"recommendedRestock"`
	Urgency            string `json:"urgency"` // High, Medium, Low
	Reason             string `json:"reason"`
}

// PatternInsight patrón detectado en los movimientos.
type PatternInsight struct {
	Category    string `json:"category"` // Sales, Inventory, Seasonal
	Title       string `json:"title"`
	Description string `json:"description"`
	Actionable  bool   `json:"actionable"`
}
