// Package geo группирует поездки по месту для отображения на карте.
package geo

import (
	"math"
)

// Tolerance - порог близости в градусах, примерно 100 м на средних широтах
const Tolerance = 0.001

type Point struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// Locatable - все, что можно поставить на карту
type Locatable interface {
	Coordinates() (lat, lng float64)
}

type Cluster[T Locatable] struct {
	Centroid Point `json:"centroid"`
	Members  []T   `json:"members"`
}

// Size возвращает число элементов в кластере
func (c Cluster[T]) Size() int {
	return len(c.Members)
}

// Clusters группирует элементы с порогом Tolerance.
func Clusters[T Locatable](items []T) []Cluster[T] {
	return ClustersWithin(items, Tolerance)
}

// ClustersWithin - жадная группировка за один проход.
//
// Центр кластера фиксируется по первому элементу и не пересчитывается.
// Элемент попадает в первый по порядку создания кластер, до центра которого
// строго меньше tolerance (не в ближайший). Результат зависит от порядка входа
// и не оптимален глобально; повторного прохода нет.
func ClustersWithin[T Locatable](items []T, tolerance float64) []Cluster[T] {
	clusters := make([]Cluster[T], 0)

	for _, item := range items {
		lat, lng := item.Coordinates()
		p := Point{Lat: lat, Lng: lng}

		joined := false
		for i := range clusters {
			if Distance(clusters[i].Centroid, p) < tolerance {
				clusters[i].Members = append(clusters[i].Members, item)
				joined = true
				break
			}
		}

		if !joined {
			clusters = append(clusters, Cluster[T]{
				Centroid: p,
				Members:  []T{item},
			})
		}
	}

	return clusters
}

// Distance - евклидово расстояние в градусах
func Distance(a, b Point) float64 {
	return math.Hypot(a.Lat-b.Lat, a.Lng-b.Lng)
}
