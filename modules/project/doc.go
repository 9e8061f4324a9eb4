// Package project provides the administrator form for publishing a new
// volunteering project.
//
// Skills are free-form tags, available days are weekday chips with set
// semantics, and the number of volunteers is entered as numeric text within
// [MinVolunteers, MaxVolunteers]. The start date may not lie in the past.
// A created project shows a toast and navigates to the projects list.
package project
