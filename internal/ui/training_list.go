package ui

import (
	"log"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"

	"github.com/ytget/workout-viewer/internal/model"
)

// TrainingListView lists the recorded training files and exports them as GPX
type TrainingListView struct {
	ui *RootUI

	files    []model.TrainingFile
	selected int

	list        *widget.List
	emptyLabel  *widget.Label
	downloadBtn *widget.Button
	deleteBtn   *widget.Button
	container   fyne.CanvasObject
}

// NewTrainingListView creates the page; call Reload to fill it
func NewTrainingListView(ui *RootUI) *TrainingListView {
	v := &TrainingListView{ui: ui, selected: -1}
	v.createUI()
	return v
}

// Container returns the page content
func (v *TrainingListView) Container() fyne.CanvasObject {
	return v.container
}

func (v *TrainingListView) createUI() {
	l := v.ui.localization

	v.list = widget.NewList(
		func() int { return len(v.files) },
		func() fyne.CanvasObject {
			date := widget.NewLabel("")
			date.TextStyle = fyne.TextStyle{Monospace: true}
			name := widget.NewLabel("")
			name.Truncation = fyne.TextTruncateEllipsis
			return container.NewBorder(nil, nil, nil, date, name)
		},
		func(id widget.ListItemID, obj fyne.CanvasObject) {
			if id < 0 || id >= len(v.files) {
				return
			}
			file := v.files[id]
			row := obj.(*fyne.Container)
			row.Objects[0].(*widget.Label).SetText(file.Name)
			row.Objects[1].(*widget.Label).SetText(file.CreatedAt.Local().Format(CreatedAtFormat))
		},
	)
	v.list.OnSelected = func(id widget.ListItemID) {
		v.selected = id
		v.updateButtons()
	}
	v.list.OnUnselected = func(widget.ListItemID) {
		v.selected = -1
		v.updateButtons()
	}

	v.emptyLabel = widget.NewLabel(l.GetText(KeyNoTrainings))
	v.emptyLabel.Alignment = fyne.TextAlignCenter
	v.emptyLabel.Hide()

	refreshBtn := widget.NewButton(IconRefresh+" "+l.GetText(KeyRefresh), v.Reload)
	v.downloadBtn = widget.NewButton(IconFolder+" "+l.GetText(KeyDownload), v.download)
	v.downloadBtn.Importance = widget.HighImportance
	v.deleteBtn = widget.NewButton(IconDelete+" "+l.GetText(KeyDelete), v.confirmDelete)
	v.deleteBtn.Importance = widget.DangerImportance
	v.updateButtons()

	v.container = container.NewBorder(
		container.NewHBox(refreshBtn, v.downloadBtn, v.deleteBtn),
		nil, nil, nil,
		container.NewStack(v.list, v.emptyLabel),
	)
}

func (v *TrainingListView) updateButtons() {
	if v.selected >= 0 && v.selected < len(v.files) {
		v.downloadBtn.Enable()
		v.deleteBtn.Enable()
		return
	}
	v.downloadBtn.Disable()
	v.deleteBtn.Disable()
}

// selectedFile returns the selected training, if any
func (v *TrainingListView) selectedFile() (model.TrainingFile, bool) {
	if v.selected < 0 || v.selected >= len(v.files) {
		return model.TrainingFile{}, false
	}
	return v.files[v.selected], true
}

// Reload reads the training list in the background
func (v *TrainingListView) Reload() {
	store := v.ui.store
	if store == nil {
		v.setFiles(nil)
		return
	}

	go func() {
		ctx, cancel := v.ui.storeContext()
		defer cancel()

		files, err := store.List(ctx)
		fyne.Do(func() {
			if err != nil {
				log.Printf("failed to list trainings: %v", err)
				dialog.ShowError(err, v.ui.window)
				return
			}
			v.setFiles(files)
		})
	}()
}

func (v *TrainingListView) setFiles(files []model.TrainingFile) {
	v.files = files
	v.selected = -1
	v.list.UnselectAll()
	v.list.Refresh()
	if len(files) == 0 {
		v.emptyLabel.Show()
	} else {
		v.emptyLabel.Hide()
	}
	v.updateButtons()
}

// download exports the selected training into the download directory
func (v *TrainingListView) download() {
	file, ok := v.selectedFile()
	store := v.ui.store
	if !ok || store == nil {
		dialog.ShowInformation(v.ui.localization.GetText(KeyTrainingSessions), v.ui.localization.GetText(KeySelectTraining), v.ui.window)
		return
	}
	dir := v.ui.settings.GetDownloadDirectory()

	go func() {
		ctx, cancel := v.ui.storeContext()
		defer cancel()

		path, err := store.Export(ctx, file.ID, dir)
		fyne.Do(func() {
			if err != nil {
				log.Printf("failed to export training %d: %v", file.ID, err)
				dialog.ShowError(err, v.ui.window)
				return
			}
			log.Printf("exported training %d to %s", file.ID, path)
			v.ui.showToastNotification(v.ui.localization.GetText(KeyExported), path)
		})
	}()
}

// confirmDelete removes the selected training after confirmation
func (v *TrainingListView) confirmDelete() {
	file, ok := v.selectedFile()
	store := v.ui.store
	if !ok || store == nil {
		return
	}

	l := v.ui.localization
	dialog.ShowConfirm(l.GetText(KeyDelete), l.GetText(KeyDeleteConfirm)+"\n"+file.Name, func(confirmed bool) {
		if !confirmed {
			return
		}
		go func() {
			ctx, cancel := v.ui.storeContext()
			defer cancel()

			err := store.Delete(ctx, file.ID)
			fyne.Do(func() {
				if err != nil {
					log.Printf("failed to delete training %d: %v", file.ID, err)
					dialog.ShowError(err, v.ui.window)
				}
				v.Reload()
			})
		}()
	}, v.ui.window)
}
