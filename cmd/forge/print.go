package main

import (
	"fmt"
	"strconv"
	"strings"
)

// formatVector renders a 1-D slice as "[a b c]".
func formatVector(data []float64) string {
	var sb strings.Builder
	sb.WriteByte('[')
	for i, v := range data {
		if i > 0 {
			sb.WriteByte(' ')
		}
		sb.WriteString(strconv.FormatFloat(v, 'g', -1, 64))
	}
	sb.WriteByte(']')
	return sb.String()
}

func printVector(data []float64) {
	fmt.Println(formatVector(data))
}

func printMatrix(data []float64, rows, cols int) {
	for i := 0; i < rows; i++ {
		fmt.Println(formatVector(data[i*cols : (i+1)*cols]))
	}
}
