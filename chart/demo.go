package chart

var months = [12]string{"Jan", "Feb", "Mar", "Apr", "May", "Jun", "Jul", "Aug", "Sep", "Oct", "Nov", "Dec"}

// Monthly builds a dataset of twelve month-labelled values.
func Monthly(key string, values [12]float64) Dataset {
	d := Dataset{Key: key, Samples: make([]Sample, len(values))}
	for i, v := range values {
		d.Samples[i] = Sample{Label: months[i], Value: v}
	}
	return d
}

// DemoDatasets returns the two yearly revenue series the demo chart compares.
func DemoDatasets() []Dataset {
	return []Dataset{
		Monthly("2025", [12]float64{40, 65, 45, 60, 50, 70, 50, 85, 60, 75, 75, 50}),
		Monthly("2026", [12]float64{55, 45, 70, 80, 65, 55, 90, 70, 85, 60, 95, 80}),
	}
}
