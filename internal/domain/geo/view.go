package geo

const (
	DefaultZoom = 6
	SingleZoom  = 10
)

// DefaultCenter - центр карты, когда поездок нет (Лондон)
var DefaultCenter = Point{Lat: 51.505, Lng: -0.09}

type View struct {
	Center Point `json:"center"`
	Zoom   int   `json:"zoom"`
}

// MapView вычисляет центр и масштаб карты: одна поездка - крупно на ней,
// несколько - среднее арифметическое координат.
func MapView[T Locatable](items []T) View {
	switch len(items) {
	case 0:
		return View{Center: DefaultCenter, Zoom: DefaultZoom}
	case 1:
		lat, lng := items[0].Coordinates()
		return View{Center: Point{Lat: lat, Lng: lng}, Zoom: SingleZoom}
	}

	var sumLat, sumLng float64
	for _, item := range items {
		lat, lng := item.Coordinates()
		sumLat += lat
		sumLng += lng
	}
	n := float64(len(items))

	return View{
		Center: Point{Lat: sumLat / n, Lng: sumLng / n},
		Zoom:   DefaultZoom,
	}
}
