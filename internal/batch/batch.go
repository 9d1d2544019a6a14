// Package batch reads lists of gears from TOML files and measures them.
//
// A batch file holds [[spur]] and [[helical]] tables:
//
//	[[spur]]
//	name = "pinion"
//	teeth = 55
//	pitch = 3.0
//	pressure_angle = 20.0
//	thinning = 0.004
//
//	[[helical]]
//	name = "idler"
//	teeth = 14
//	pitch = 18.3850656
//	pressure_angle = 14.5
//	helix_angle = 40.0
//	thinning = 0.002
package batch

import (
	"fmt"
	"io"

	"github.com/BurntSushi/toml"
	"github.com/soypat/mow"
	"github.com/soypat/mow/gear"
)

// Gear kinds reported in Result.
const (
	KindSpur    = "spur"
	KindHelical = "helical"
)

// SpurJob is a spur gear entry of a batch file.
type SpurJob struct {
	Name          string  `toml:"name"`
	Teeth         int     `toml:"teeth"`
	Pitch         float64 `toml:"pitch"`
	PressureAngle float64 `toml:"pressure_angle"`
	Thinning      float64 `toml:"thinning"`
}

// HelicalJob is a helical gear entry of a batch file.
type HelicalJob struct {
	Name          string  `toml:"name"`
	Teeth         int     `toml:"teeth"`
	Pitch         float64 `toml:"pitch"`
	PressureAngle float64 `toml:"pressure_angle"`
	HelixAngle    float64 `toml:"helix_angle"`
	Thinning      float64 `toml:"thinning"`
}

// File is the decoded contents of a batch file.
type File struct {
	Spur    []SpurJob    `toml:"spur"`
	Helical []HelicalJob `toml:"helical"`
}

// Gear returns the gear specification of the job.
func (j SpurJob) Gear() gear.Spur {
	return gear.Spur{N: j.Teeth, P: j.Pitch, PA: j.PressureAngle, Thinning: j.Thinning}
}

// Gear returns the gear specification of the job.
func (j HelicalJob) Gear() gear.Helical {
	return gear.Helical{N: j.Teeth, P: j.Pitch, PA: j.PressureAngle, Helix: j.HelixAngle, Thinning: j.Thinning}
}

// Result is the outcome of one job. Err is set when the measurement
// failed or is not positive.
type Result struct {
	Name        string
	Kind        string
	Measurement float64
	Err         error
}

// Decode reads a batch file from r. Unknown keys are an error.
func Decode(r io.Reader) (File, error) {
	var f File
	md, err := toml.NewDecoder(r).Decode(&f)
	if err != nil {
		return File{}, fmt.Errorf("decode batch: %w", err)
	}
	if undec := md.Undecoded(); len(undec) > 0 {
		return File{}, fmt.Errorf("decode batch: unknown key %q", undec[0].String())
	}
	return f, nil
}

// Load reads the batch file at path.
func Load(path string) (File, error) {
	var f File
	md, err := toml.DecodeFile(path, &f)
	if err != nil {
		return File{}, fmt.Errorf("load batch %s: %w", path, err)
	}
	if undec := md.Undecoded(); len(undec) > 0 {
		return File{}, fmt.Errorf("load batch %s: unknown key %q", path, undec[0].String())
	}
	return f, nil
}

// Run measures every job of f, spur gears first, in file order.
// A failing job does not stop the others.
func Run(f File) []Result {
	results := make([]Result, 0, len(f.Spur)+len(f.Helical))
	for i, j := range f.Spur {
		results = append(results, measure(name(j.Name, KindSpur, i), KindSpur, j.Gear()))
	}
	for i, j := range f.Helical {
		results = append(results, measure(name(j.Name, KindHelical, i), KindHelical, j.Gear()))
	}
	return results
}

func measure(name, kind string, g mow.Measurer) Result {
	m, err := g.Measure()
	return Result{Name: name, Kind: kind, Measurement: m, Err: err}
}

func name(given, kind string, i int) string {
	if given != "" {
		return given
	}
	return fmt.Sprintf("%s#%d", kind, i+1)
}
