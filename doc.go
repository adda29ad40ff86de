/*
Command moontool computes phases of the Moon.

# Program overview

Moontool answers three questions: when are the principal phases of the
lunation containing a given time, which principal phases fall in a range
of time, and what is the state of the Moon and Sun at a given time.  The
principal phases are new moon, first quarter, full moon, and last quarter.

Sample run:

	$ moontool hunt --at 2008-10-31T00:00:00-08:00 --tz UTC
	New Moon      Tue Oct 28 23:14:50 UTC 2008
	First quarter Thu Nov 6 04:04:37 UTC 2008
	Full moon     Thu Nov 13 06:19:20 UTC 2008
	Last quarter  Wed Nov 19 21:33:04 UTC 2008
	New Moon      Thu Nov 27 16:55:54 UTC 2008

Phase times computed here agree with those published by the U.S. Naval
Observatory to within a few minutes over the twentieth and
twenty-first centuries.

# Command line usage

	moontool hunt [--at TIME]
	moontool list --start TIME [--stop TIME | --days N] [--flat]
	moontool phase [--at TIME] [--values]

TIME is Unix seconds or an RFC 3339 date-time.  A date-time without a zone
offset, such as "2008-10-31 08:00" or "2008-10-31", is taken in the display
time zone.  Where --at is omitted the current time is used.

Hunt shows the five phases bounding the lunation containing the time: the
new moon at or before it, the three phases after, and the following new
moon.

List shows the phases falling at or after --start and before --stop.
With --flat, output is the selector of the first phase as an integer,
0 for new moon through 3 for last quarter, then the Unix times of
successive phases, one per line.

Phase shows illuminated fraction, age, distance, and angular diameter of
the Moon, and distance and angular diameter of the Sun.  With --values it
prints seven numbers, one per line: phase as a fraction of the lunation,
illuminated fraction, age in days, Moon distance in km, Moon diameter in
degrees, Sun distance in km, and Sun diameter in degrees.

Global options:

	--config <file>     config file, default .moontool.yaml
	--tz <zone>         display time zone, an IANA name or Local
	--format <layout>   display time layout in Go reference time notation
	--log-level <lvl>   debug, info, warn, or error; logs go to stderr

# Configuration

Settings are read from .moontool.yaml in the working directory or the home
directory, from MOONTOOL_ environment variables, and from the global
options, later sources taking precedence.

	timezone      MOONTOOL_TIMEZONE      default Local
	time_format   MOONTOOL_TIME_FORMAT   default Mon Jan 2 15:04:05 MST 2006
	log_level     MOONTOOL_LOG_LEVEL     default info
	list_days     MOONTOOL_LIST_DAYS     default 30, the list range without --stop

# Packages

The computations are available as packages for use in other programs.
Package jtime converts between Unix seconds and Julian dates.  Package
kepler solves Kepler's equation.  Package phase computes mean and true
phase times, Hunt, and List.  Package ephem computes the Moon and Sun
state at an instant.

# Algorithm outline

The lunation number k counts new moons from 1900 January 0.5.  A mean
phase time is a polynomial in k and in Julian centuries from that epoch.

True phase times add periodic terms in the mean anomalies of the Sun
and Moon and the Moon's argument of latitude.  New and full moon use one
series, quarters another with a further correction of opposite sign for
first and last quarter.

Hunt steps mean new moons forward from 45 days before the time until
the time is bracketed, then computes true phases of the bracketing lunation.

Phase state follows moontool: the Sun on a Keplerian ellipse, the Moon's
longitude corrected for evection, the annual equation, the equation of the
centre, and variation, with elements referred to 1980 January 0.0.

Public domain.
*/
package main
