// Package sorter orders exported courses by course number.
package sorter

import "github.com/gostonefire/coursecatalog/internal/model"

// Quicksort - Sorts courses in place, ascending by course number compared as strings. The sort is not stable.
func Quicksort(courses []model.Course) {
	quicksort(courses, 0, len(courses)-1)
}

// quicksort - Sorts courses[low..high] (inclusive) in place
func quicksort(courses []model.Course, low, high int) {
	// Zero or one elements are already sorted
	if low >= high {
		return
	}

	lowEnd := partition(courses, low, high)
	quicksort(courses, low, lowEnd)
	quicksort(courses, lowEnd+1, high)
}

// partition - Partitions courses[low..high] around the number of the middle element and returns the index of the
// last element of the low partition. The pivot is held by value since the middle element may be swapped away.
func partition(courses []model.Course, low, high int) int {
	pivot := courses[low+(high-low)/2].Number

	for {
		for courses[low].Number < pivot {
			low++
		}
		for pivot < courses[high].Number {
			high--
		}

		if low >= high {
			return high
		}

		courses[low], courses[high] = courses[high], courses[low]
		low++
		high--
	}
}
