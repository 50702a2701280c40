package util

import (
	"os"
	"path/filepath"
	"sort"

	"golang.org/x/exp/constraints"
)

func EnsureOutputDir(dir string) error {
	return os.MkdirAll(dir, 0777)
}

// GatherSongDirs returns the directories directly under path that contain
// a melody file, sorted by name. maxNum of 0 means no limit.
func GatherSongDirs(path string, marker string, maxNum int) ([]string, error) {
	var res []string
	entries, err := os.ReadDir(path)
	if err != nil {
		return nil, err
	}
	for _, d := range entries {
		if !d.IsDir() {
			continue
		}
		dir := filepath.Join(path, d.Name())
		if _, err := os.Stat(filepath.Join(dir, marker)); err != nil {
			if os.IsNotExist(err) {
				continue
			}
			return nil, err
		}
		res = append(res, dir)
	}
	sort.Strings(res)
	if maxNum > 0 && len(res) > maxNum {
		res = res[:maxNum]
	}
	return res, nil
}

// ExclusiveCumSum returns the running totals before each element, so
// out[0] == 0 and out[i] == nums[0] + ... + nums[i-1].
func ExclusiveCumSum[A constraints.Integer](nums []A) []A {
	res := make([]A, len(nums))
	var total A
	for i, v := range nums {
		res[i] = total
		total += v
	}
	return res
}

func Sum[A constraints.Integer](nums []A) A {
	var total A
	for _, v := range nums {
		total += v
	}
	return total
}

func Max[A constraints.Ordered](first A, rest ...A) A {
	res := first
	for _, v := range rest {
		if v > res {
			res = v
		}
	}
	return res
}

func Min[A constraints.Integer](num1 A, num2 A) A {
	if num1 > num2 {
		return num2
	}
	return num1
}

// CeilDiv divides rounding up. b must be positive.
func CeilDiv[A constraints.Integer](a, b A) A {
	if a <= 0 {
		return -((-a) / b)
	}
	return (a + b - 1) / b
}

// Mod is the non-negative remainder of a / b.
func Mod[A constraints.Integer](a, b A) A {
	m := a % b
	if m < 0 {
		m += b
	}
	return m
}
