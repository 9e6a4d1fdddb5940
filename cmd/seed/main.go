package main

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/signstudio/signage-backend/config"
	"github.com/signstudio/signage-backend/internal/app/model"
	"github.com/signstudio/signage-backend/internal/app/repository"
	"github.com/signstudio/signage-backend/internal/db"
	"github.com/xuri/excelize/v2"
)

// Seeds the option catalog from an XLSX workbook with three sheets:
//
//	Colors: color_name | hex_value
//	Images: image_url  | image_name
//	Shapes: shape_name | image | width | height
//
// The first row of each sheet is a header and is skipped.
func main() {
	if len(os.Args) < 2 {
		log.Fatal("Usage: go run cmd/seed/main.go <xlsx_file_path>")
	}

	filePath := os.Args[1]

	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Failed to load config:", err)
	}

	if err := db.Initialize(&cfg.Database); err != nil {
		log.Fatal("Failed to connect to database:", err)
	}
	defer db.Close()

	if err := db.Migrate(); err != nil {
		log.Fatal("Failed to run migrations:", err)
	}

	fmt.Printf("Reading XLSX file: %s\n", filePath)
	workbook, err := excelize.OpenFile(filePath)
	if err != nil {
		log.Fatal("Failed to open XLSX:", err)
	}
	defer workbook.Close()

	colors, err := readColors(workbook)
	if err != nil {
		log.Fatal("Failed to read Colors sheet:", err)
	}
	images, err := readImages(workbook)
	if err != nil {
		log.Fatal("Failed to read Images sheet:", err)
	}
	shapes, err := readShapes(workbook)
	if err != nil {
		log.Fatal("Failed to read Shapes sheet:", err)
	}

	fmt.Printf("Catalog entries to import: %d colors, %d images, %d shapes\n",
		len(colors), len(images), len(shapes))

	fmt.Print("Do you want to proceed with the import? (yes/no): ")
	var confirm string
	fmt.Scanln(&confirm)
	if confirm != "yes" && confirm != "y" {
		fmt.Println("Import cancelled.")
		return
	}

	catalogRepo := repository.NewCatalogRepository(db.GetDB())

	imported, skipped := 0, 0
	for i := range colors {
		if err := catalogRepo.CreateColor(&colors[i]); err != nil {
			fmt.Printf("Skipping color %s (%s): %v\n", colors[i].ColorName, colors[i].HexValue, err)
			skipped++
			continue
		}
		imported++
	}
	for i := range images {
		if err := catalogRepo.CreateImage(&images[i]); err != nil {
			fmt.Printf("Skipping image %s: %v\n", images[i].ImageURL, err)
			skipped++
			continue
		}
		imported++
	}
	for i := range shapes {
		if err := catalogRepo.CreateShape(&shapes[i]); err != nil {
			fmt.Printf("Skipping shape %s: %v\n", shapes[i].ShapeName, err)
			skipped++
			continue
		}
		imported++
	}

	fmt.Printf("Import finished: %d imported, %d skipped\n", imported, skipped)
}

func readColors(workbook *excelize.File) ([]model.AvailableColor, error) {
	rows, err := workbook.GetRows("Colors")
	if err != nil {
		return nil, err
	}

	var colors []model.AvailableColor
	for i, row := range rows {
		if i == 0 || len(row) < 2 {
			continue
		}
		name := strings.TrimSpace(row[0])
		hex := strings.TrimSpace(row[1])
		if name == "" || hex == "" {
			continue
		}
		if !model.ValidHex(hex) {
			fmt.Printf("Row %d: invalid hex value %q, skipping\n", i+1, hex)
			continue
		}
		colors = append(colors, model.AvailableColor{ColorName: name, HexValue: hex})
	}
	return colors, nil
}

func readImages(workbook *excelize.File) ([]model.SignageImage, error) {
	rows, err := workbook.GetRows("Images")
	if err != nil {
		return nil, err
	}

	var images []model.SignageImage
	for i, row := range rows {
		if i == 0 || len(row) < 1 {
			continue
		}
		url := strings.TrimSpace(row[0])
		if url == "" {
			continue
		}
		image := model.SignageImage{ImageURL: url}
		if len(row) > 1 {
			if name := strings.TrimSpace(row[1]); name != "" {
				image.ImageName = &name
			}
		}
		images = append(images, image)
	}
	return images, nil
}

func readShapes(workbook *excelize.File) ([]model.ShapeSize, error) {
	rows, err := workbook.GetRows("Shapes")
	if err != nil {
		return nil, err
	}

	var shapes []model.ShapeSize
	for i, row := range rows {
		if i == 0 || len(row) < 1 {
			continue
		}
		name := strings.TrimSpace(row[0])
		if name == "" {
			continue
		}
		shape := model.ShapeSize{ShapeName: name}
		if len(row) > 1 {
			if svg := strings.TrimSpace(row[1]); svg != "" {
				shape.Image = &svg
			}
		}
		if len(row) > 2 {
			if w, err := parseDimension(row[2]); err == nil {
				shape.Width = &w
			}
		}
		if len(row) > 3 {
			if h, err := parseDimension(row[3]); err == nil {
				shape.Height = &h
			}
		}
		shapes = append(shapes, shape)
	}
	return shapes, nil
}

func parseDimension(cell string) (float64, error) {
	cell = strings.TrimSpace(cell)
	if cell == "" {
		return 0, fmt.Errorf("empty cell")
	}
	return strconv.ParseFloat(cell, 64)
}
